package history

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"med-reconciliation/internal/domain/report"
	"med-reconciliation/internal/domain/translation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, tr *translation.Service) {
	r.Route("/history", func(hr chi.Router) {
		hr.Get("/", listHistoryHandler(svc))
		hr.Get("/{recordID}", getHistoryHandler(svc))
		hr.Get("/{recordID}/report", historyReportHandler(svc, tr))
	})
}

// listHistoryResponse envuelve los registros aprobados, más reciente primero.
type listHistoryResponse struct {
	Items []Record `json:"items"`
}

// reportResponse es la forma JSON del reporte imprimible.
type reportResponse struct {
	Language   string          `json:"language"`
	Translated bool            `json:"translated"`
	Document   report.Document `json:"document"`
}

// listHistoryHandler godoc
// @Summary Listar horarios aprobados
// @Description Devuelve los registros de historial ordenados por fecha descendente. Se puede filtrar por paciente.
// @Tags history
// @Produce json
// @Param patient_id query string false "ID del paciente"
// @Param limit query int false "Máximo de registros (1-200). Por defecto 50"
// @Success 200 {object} listHistoryResponse
// @Router /history [get]
func listHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
				limit = n
			}
		}

		items, err := svc.List(r.Context(), ListFilter{
			PatientID: r.URL.Query().Get("patient_id"),
			Limit:     limit,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, listHistoryResponse{Items: items})
	}
}

// getHistoryHandler godoc
// @Summary Obtener registro de historial
// @Tags history
// @Produce json
// @Param recordID path string true "ID del registro"
// @Success 200 {object} Record
// @Failure 404 {string} string "not found"
// @Router /history/{recordID} [get]
func getHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeHistoryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// historyReportHandler godoc
// @Summary Reporte de un horario aprobado
// @Description Genera el reporte imprimible. Con `lang` intenta traducir; si la traducción falla o cambia ids se usa el idioma original.
// @Tags history
// @Produce json,html
// @Param recordID path string true "ID del registro"
// @Param lang query string false "Idioma destino (p.ej. Spanish)"
// @Param format query string false "json (default) o html"
// @Success 200 {object} reportResponse
// @Failure 404 {string} string "not found"
// @Router /history/{recordID}/report [get]
func historyReportHandler(svc *Service, tr *translation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeHistoryError(w, err)
			return
		}

		view := tr.Localize(r.Context(), rec.Data, r.URL.Query().Get("lang"))
		doc := report.Build(view.Result, rec.ScheduleName, rec.Date, view.Labels)

		if strings.EqualFold(r.URL.Query().Get("format"), "html") {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_ = report.RenderHTML(w, doc)
			return
		}
		writeJSON(w, http.StatusOK, reportResponse{
			Language:   view.Language,
			Translated: view.Translated,
			Document:   doc,
		})
	}
}

func writeHistoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
