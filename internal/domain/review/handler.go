package review

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"med-reconciliation/internal/domain/history"
	"med-reconciliation/internal/domain/medications"
	"med-reconciliation/internal/domain/report"
	"med-reconciliation/internal/middleware"
	"med-reconciliation/internal/ports/extraction"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes limita el cuerpo de /analysis (imágenes en base64).
const maxUploadBytes = 32 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/patients/{patientID}", func(pr chi.Router) {
		pr.Post("/analysis", analyzeHandler(svc))
		pr.Post("/analysis/retry", retryHandler(svc))

		pr.Route("/session", func(sr chi.Router) {
			sr.Get("/", getSessionHandler(svc))
			sr.Post("/review", startReviewHandler(svc))
			sr.Patch("/medications/{medicationID}", editFieldHandler(svc))
			sr.Post("/moves", moveHandler(svc))
			sr.Post("/request-changes", requestChangesHandler(svc))
			sr.Post("/approve", approveHandler(svc))
			sr.Post("/revise", reviseHandler(svc))
			sr.Get("/report", sessionReportHandler(svc))
		})
	})
}

// imageRequest es una imagen subida en base64.
type imageRequest struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64 estándar
	Source   string `json:"source,omitempty" enums:"HOSPITAL,HOME"`
}

// analyzeRequest es el cuerpo para iniciar un análisis.
type analyzeRequest struct {
	PatientName string         `json:"patient_name"`
	Images      []imageRequest `json:"images"`
}

// editFieldRequest cambia un campo de un medicamento.
type editFieldRequest struct {
	Field Field  `json:"field" enums:"name,dosage,frequency,instructions,category"`
	Value string `json:"value"`
}

// moveRequest mueve un medicamento entre franjas.
type moveRequest struct {
	MedicationID string           `json:"medication_id"`
	From         medications.Slot `json:"from" enums:"morning,noon,evening,bedtime"`
	To           medications.Slot `json:"to" enums:"morning,noon,evening,bedtime"`
}

// approveRequest aprueba el horario; schedule_name vacío genera "Schedule N".
type approveRequest struct {
	ScheduleName string `json:"schedule_name"`
}

// reviseRequest abre una revisión a partir de un registro aprobado.
type reviseRequest struct {
	HistoryID string `json:"history_id"`
}

// reportResponse es la forma JSON del reporte imprimible.
type reportResponse struct {
	Language   string          `json:"language"`
	Translated bool            `json:"translated"`
	Document   report.Document `json:"document"`
}

// analyzeHandler godoc
// @Summary Analizar imágenes de medicamentos
// @Description Extrae medicamentos de epicrisis y frascos, los reconcilia y crea un horario en DRAFT. Solo un análisis por paciente a la vez. Si la extracción falla las imágenes se conservan para reintentar.
// @Tags review
// @Accept json
// @Produce json
// @Param X-Reviewer-ID header string false "Clínico que opera (solo atribución)"
// @Param patientID path string true "ID del paciente"
// @Param payload body analyzeRequest true "Imágenes en base64"
// @Success 201 {object} Session
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 409 {string} string "analysis already in progress"
// @Failure 502 {string} string "extraction failed"
// @Router /patients/{patientID}/analysis [post]
func analyzeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUploadBytes)).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		images := make([]extraction.Image, 0, len(req.Images))
		for _, img := range req.Images {
			data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(img.Data))
			if err != nil {
				http.Error(w, "images[].data must be base64", http.StatusBadRequest)
				return
			}
			images = append(images, extraction.Image{Data: data, MimeType: img.MimeType, Source: img.Source})
		}

		sess, err := svc.Analyze(r.Context(), chi.URLParam(r, "patientID"), req.PatientName, images)
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sess)
	}
}

// retryHandler godoc
// @Summary Reintentar análisis
// @Description Vuelve a correr el análisis con las imágenes de la última corrida fallida.
// @Tags review
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 201 {object} Session
// @Failure 404 {string} string "no pending upload"
// @Failure 409 {string} string "analysis already in progress"
// @Failure 502 {string} string "extraction failed"
// @Router /patients/{patientID}/analysis/retry [post]
func retryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Retry(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sess)
	}
}

// getSessionHandler godoc
// @Summary Obtener horario de trabajo
// @Tags review
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} Session
// @Failure 404 {string} string "session not found"
// @Router /patients/{patientID}/session [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Get(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// startReviewHandler godoc
// @Summary Iniciar revisión (DRAFT -> UNDER_REVIEW)
// @Tags review
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} Session
// @Failure 409 {string} string "invalid state transition"
// @Router /patients/{patientID}/session/review [post]
func startReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.StartReview(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// editFieldHandler godoc
// @Summary Editar campo de un medicamento
// @Description Solo en UNDER_REVIEW. Un id inexistente no falla: la sesión vuelve sin cambios y se cuenta en diagnostics.
// @Tags review
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param medicationID path string true "ID del medicamento"
// @Param payload body editFieldRequest true "Campo y valor"
// @Success 200 {object} Session
// @Failure 400 {string} string "invalid field / value"
// @Failure 409 {string} string "invalid state transition"
// @Router /patients/{patientID}/session/medications/{medicationID} [patch]
func editFieldHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req editFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		field := Field(strings.ToLower(strings.TrimSpace(string(req.Field))))

		sess, err := svc.EditField(r.Context(), chi.URLParam(r, "patientID"), chi.URLParam(r, "medicationID"), field, req.Value)
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// moveHandler godoc
// @Summary Mover medicamento entre franjas
// @Description Solo en UNDER_REVIEW. Idempotente: quita de `from` (si está) y agrega a `to` si no está.
// @Tags review
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body moveRequest true "Movimiento"
// @Success 200 {object} Session
// @Failure 400 {string} string "invalid slot"
// @Failure 409 {string} string "invalid state transition"
// @Router /patients/{patientID}/session/moves [post]
func moveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req moveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		from, _ := medications.ParseSlot(string(req.From))
		to, _ := medications.ParseSlot(string(req.To))

		sess, err := svc.MoveMedication(r.Context(), chi.URLParam(r, "patientID"), req.MedicationID, from, to)
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// requestChangesHandler godoc
// @Summary Pedir cambios (UNDER_REVIEW -> DRAFT)
// @Tags review
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} Session
// @Failure 409 {string} string "invalid state transition"
// @Router /patients/{patientID}/session/request-changes [post]
func requestChangesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.RequestChanges(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// approveHandler godoc
// @Summary Aprobar horario
// @Description Congela una copia del horario en el historial. Desde DRAFT o UNDER_REVIEW.
// @Tags review
// @Accept json
// @Produce json
// @Param X-Reviewer-ID header string false "Clínico que aprueba (solo atribución)"
// @Param patientID path string true "ID del paciente"
// @Param payload body approveRequest false "Nombre del horario"
// @Success 201 {object} history.Record
// @Failure 409 {string} string "invalid state transition"
// @Router /patients/{patientID}/session/approve [post]
func approveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// body opcional
		var req approveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		reviewer, _ := middleware.GetReviewer(r.Context())
		rec, err := svc.Approve(r.Context(), chi.URLParam(r, "patientID"), req.ScheduleName, reviewer)
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// reviseHandler godoc
// @Summary Revisar un horario aprobado
// @Description Crea un DRAFT nuevo con una copia del registro; el registro no cambia.
// @Tags review
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body reviseRequest true "Registro de historial"
// @Success 201 {object} Session
// @Failure 404 {string} string "history record not found"
// @Router /patients/{patientID}/session/revise [post]
func reviseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reviseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.Revise(r.Context(), chi.URLParam(r, "patientID"), req.HistoryID)
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sess)
	}
}

// sessionReportHandler godoc
// @Summary Reporte del horario de trabajo
// @Tags review
// @Produce json,html
// @Param patientID path string true "ID del paciente"
// @Param lang query string false "Idioma destino"
// @Param format query string false "json (default) o html"
// @Success 200 {object} reportResponse
// @Failure 404 {string} string "session not found"
// @Router /patients/{patientID}/session/report [get]
func sessionReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, view, err := svc.Report(r.Context(), chi.URLParam(r, "patientID"), r.URL.Query().Get("lang"))
		if err != nil {
			writeReviewError(w, err)
			return
		}

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

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, medications.ErrValidation), errors.Is(err, ErrInvalidInput), errors.Is(err, history.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound), errors.Is(err, history.ErrNotFound), errors.Is(err, ErrNoPendingUpload):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrAnalysisInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrExtractionFailed):
		http.Error(w, "extraction failed, please retry", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
