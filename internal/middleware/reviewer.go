package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const reviewerKey ctxKey = "reviewer"

// ReviewerHeader identifica al clínico que opera. No es autenticación:
// solo atribución para el historial.
const ReviewerHeader = "X-Reviewer-ID"

// ReviewerContext copia X-Reviewer-ID al contexto si viene.
// Sin header el request sigue igual; el handler decide el default.
func ReviewerContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(ReviewerHeader))
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), reviewerKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetReviewer(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(reviewerKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
