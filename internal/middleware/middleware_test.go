package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"med-reconciliation/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestReviewerContext(t *testing.T) {
	var got string
	var found bool
	h := ReviewerContext()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetReviewer(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ReviewerHeader, "  dr-house ")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !found || got != "dr-house" {
		t.Fatalf("expected reviewer dr-house, got %q (%v)", got, found)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if found {
		t.Fatalf("expected no reviewer without header")
	}
}

func TestRequestLog_WritesStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Output: &buf})

	h := chimw.RequestID(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "warning" || entry["path"] != "/missing" || entry["status"] != float64(404) {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if entry["request_id"] == "" || entry["request_id"] == nil {
		t.Fatalf("expected request id, got %#v", entry)
	}
}
