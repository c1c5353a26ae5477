package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"med-reconciliation/internal/domain/history"
	"med-reconciliation/internal/domain/interactions"
	"med-reconciliation/internal/domain/medications"
	"med-reconciliation/internal/domain/reconcile"
	"med-reconciliation/internal/domain/report"
	"med-reconciliation/internal/domain/translation"
	"med-reconciliation/internal/platform/logger"
	"med-reconciliation/internal/ports/events"
	"med-reconciliation/internal/ports/extraction"

	"github.com/google/uuid"
)

const DefaultExtractTimeout = 60 * time.Second

type Options struct {
	Extractor      extraction.Extractor
	Engine         *reconcile.Engine
	Analyzer       *interactions.Analyzer
	Translation    *translation.Service
	Publisher      events.Publisher // opcional
	Logger         logger.Logger
	ExtractTimeout time.Duration
}

type upload struct {
	patientName string
	images      []extraction.Image
}

// Service orquesta el pipeline (extracción -> reconciliación -> análisis) y
// las transiciones del horario de cada paciente.
type Service struct {
	repo      Repository
	history   *history.Service
	extractor extraction.Extractor
	engine    *reconcile.Engine
	analyzer  *interactions.Analyzer
	tr        *translation.Service
	publisher events.Publisher
	log       logger.Logger

	now            func() time.Time
	newID          func() string
	extractTimeout time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
	uploads  map[string]upload

	// serializa read-modify-write de sesiones
	editMu sync.Mutex
}

func NewService(repo Repository, hist *history.Service, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	engine := opts.Engine
	if engine == nil {
		engine = reconcile.NewEngine(nil, log)
	}
	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = interactions.NewAnalyzer(nil)
	}
	tr := opts.Translation
	if tr == nil {
		tr = translation.NewService(nil, log)
	}
	pub := opts.Publisher
	if pub == nil {
		pub = noopPublisher{}
	}
	timeout := opts.ExtractTimeout
	if timeout <= 0 {
		timeout = DefaultExtractTimeout
	}

	return &Service{
		repo:           repo,
		history:        hist,
		extractor:      opts.Extractor,
		engine:         engine,
		analyzer:       analyzer,
		tr:             tr,
		publisher:      pub,
		log:            log.With(map[string]any{"component": "review"}),
		now:            time.Now,
		newID:          uuid.NewString,
		extractTimeout: timeout,
		inflight:       map[string]struct{}{},
		uploads:        map[string]upload{},
	}
}

// Analyze corre el pipeline completo. Una sola corrida por paciente a la vez.
// Las imágenes quedan guardadas hasta que una corrida termine bien (Retry).
// Si falla, la sesión anterior queda intacta.
func (s *Service) Analyze(ctx context.Context, patientID, patientName string, images []extraction.Image) (Session, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" || len(images) == 0 {
		return Session{}, ErrInvalidInput
	}
	copied := make([]extraction.Image, 0, len(images))
	for _, img := range images {
		if len(img.Data) == 0 {
			return Session{}, ErrInvalidInput
		}
		var source string
		if strings.TrimSpace(img.Source) != "" {
			src, ok := medications.ParseSource(img.Source)
			if !ok {
				return Session{}, ErrInvalidInput
			}
			source = string(src)
		}
		copied = append(copied, extraction.Image{
			Data:     append([]byte(nil), img.Data...),
			MimeType: strings.TrimSpace(img.MimeType),
			Source:   source,
		})
	}

	if err := s.begin(patientID); err != nil {
		return Session{}, err
	}
	defer s.end(patientID)

	up := upload{patientName: strings.TrimSpace(patientName), images: copied}
	s.mu.Lock()
	s.uploads[patientID] = up
	s.mu.Unlock()

	return s.run(ctx, patientID, up)
}

// Retry vuelve a correr con las imágenes de la última corrida fallida.
func (s *Service) Retry(ctx context.Context, patientID string) (Session, error) {
	patientID = strings.TrimSpace(patientID)

	if err := s.begin(patientID); err != nil {
		return Session{}, err
	}
	defer s.end(patientID)

	s.mu.Lock()
	up, ok := s.uploads[patientID]
	s.mu.Unlock()
	if !ok {
		return Session{}, ErrNoPendingUpload
	}
	return s.run(ctx, patientID, up)
}

func (s *Service) begin(patientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[patientID]; busy {
		return ErrAnalysisInProgress
	}
	s.inflight[patientID] = struct{}{}
	return nil
}

func (s *Service) end(patientID string) {
	s.mu.Lock()
	delete(s.inflight, patientID)
	s.mu.Unlock()
}

func (s *Service) run(ctx context.Context, patientID string, up upload) (Session, error) {
	log := s.log.With(map[string]any{"patient_id": patientID, "images": len(up.images)})

	if s.extractor == nil {
		return Session{}, fmt.Errorf("%w: no extractor configured", ErrExtractionFailed)
	}

	ectx, cancel := context.WithTimeout(ctx, s.extractTimeout)
	defer cancel()

	start := s.now()
	resp, err := s.extractor.Extract(ectx, up.images)
	if err != nil {
		log.Warn("extraction failed", map[string]any{"error": err.Error()})
		if errors.Is(err, ErrExtractionFailed) {
			return Session{}, err
		}
		return Session{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	cands := reconcile.FromExtraction(resp, reconcile.UploadSource(up.images), log)
	res := s.engine.Reconcile(cands)
	res.Warnings = s.analyzer.Analyze(res.Medications)

	now := s.now()
	sess := NewSession(s.newID(), patientID, up.patientName, res, now)

	s.editMu.Lock()
	err = s.repo.Save(ctx, sess)
	s.editMu.Unlock()
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	delete(s.uploads, patientID)
	s.mu.Unlock()

	log.Info("analysis finished", map[string]any{
		"session_id":  sess.ID,
		"candidates":  len(cands),
		"medications": len(res.Medications),
		"warnings":    len(res.Warnings),
		"elapsed_ms":  now.Sub(start).Milliseconds(),
	})
	return sess, nil
}

func (s *Service) Get(ctx context.Context, patientID string) (Session, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return Session{}, ErrInvalidInput
	}
	sess, err := s.repo.Get(ctx, patientID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if err := sess.Upgrade(); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Service) StartReview(ctx context.Context, patientID string) (Session, error) {
	return s.mutate(ctx, patientID, "start_review", func(sess *Session) error {
		return sess.StartReview()
	})
}

func (s *Service) RequestChanges(ctx context.Context, patientID string) (Session, error) {
	return s.mutate(ctx, patientID, "request_changes", func(sess *Session) error {
		return sess.RequestChanges()
	})
}

// EditField recalcula warnings después de un cambio: un nombre editado puede
// crear o quitar duplicados.
func (s *Service) EditField(ctx context.Context, patientID, medicationID string, field Field, value string) (Session, error) {
	return s.mutate(ctx, patientID, "edit_field", func(sess *Session) error {
		if err := sess.EditField(medicationID, field, value); err != nil {
			return err
		}
		sess.Result.Warnings = s.analyzer.Analyze(sess.Result.Medications)
		return nil
	})
}

func (s *Service) MoveMedication(ctx context.Context, patientID, medicationID string, from, to medications.Slot) (Session, error) {
	return s.mutate(ctx, patientID, "move_medication", func(sess *Session) error {
		return sess.MoveMedication(medicationID, from, to)
	})
}

// mutate: lee, aplica y guarda completo. ErrReferenceNotFound no es fatal:
// la sesión vuelve sin cambios salvo el contador de diagnóstico.
func (s *Service) mutate(ctx context.Context, patientID, op string, fn func(*Session) error) (Session, error) {
	s.editMu.Lock()
	defer s.editMu.Unlock()

	sess, err := s.Get(ctx, patientID)
	if err != nil {
		return Session{}, err
	}

	before := sess.Diagnostics
	if err := fn(&sess); err != nil {
		if !errors.Is(err, ErrReferenceNotFound) {
			return Session{}, err
		}
		s.log.Warn("stale medication reference ignored", map[string]any{
			"patient_id":         sess.PatientID,
			"op":                 op,
			"error":              err.Error(),
			"missing_references": sess.Diagnostics.MissingReferences,
		})
		// solo cambió el contador de diagnóstico
		if serr := s.repo.Save(ctx, sess); serr != nil {
			return Session{}, serr
		}
		return sess, nil
	}

	if sess.Diagnostics.NameFallbacks > before.NameFallbacks {
		s.log.Warn("medication resolved by name", map[string]any{
			"patient_id":     sess.PatientID,
			"op":             op,
			"name_fallbacks": sess.Diagnostics.NameFallbacks,
		})
	}

	sess.LastUpdated = s.now()
	if err := s.repo.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Approve congela el horario en el historial y publica el evento (best-effort).
func (s *Service) Approve(ctx context.Context, patientID, scheduleName, reviewer string) (history.Record, error) {
	s.editMu.Lock()
	defer s.editMu.Unlock()

	sess, err := s.Get(ctx, patientID)
	if err != nil {
		return history.Record{}, err
	}

	now := s.now().UTC()
	if sess.ID == "" {
		sess.ID = s.newID()
	}
	recordID := approvalRecordID(sess.ID)

	// Un intento anterior pudo guardar el registro y fallar al guardar la sesión:
	// se reusa ese registro en vez de crear otro.
	stored, err := s.history.Get(ctx, recordID)
	switch {
	case err == nil:
		if err := sess.adopt(stored); err != nil {
			return history.Record{}, err
		}
		s.log.Warn("resuming interrupted approval", map[string]any{
			"patient_id": sess.PatientID,
			"record_id":  stored.ID,
		})
	case errors.Is(err, history.ErrNotFound):
		existing, err := s.history.Count(ctx, sess.PatientID)
		if err != nil {
			return history.Record{}, err
		}
		rec, err := sess.Approve(scheduleName, existing, recordID, now)
		if err != nil {
			return history.Record{}, err
		}
		rec.ApprovedBy = strings.TrimSpace(reviewer)

		stored, err = s.history.Append(ctx, rec)
		if err != nil {
			return history.Record{}, err
		}
	default:
		return history.Record{}, err
	}

	sess.LastUpdated = now
	if err := s.repo.Save(ctx, sess); err != nil {
		s.log.Error("approved session not saved", map[string]any{
			"patient_id": sess.PatientID,
			"record_id":  stored.ID,
			"error":      err.Error(),
		})
		return history.Record{}, err
	}

	ev := events.ScheduleApproved{
		RecordID:     stored.ID,
		PatientID:    stored.PatientID,
		ScheduleName: stored.ScheduleName,
		ApprovedBy:   stored.ApprovedBy,
		ApprovedAt:   stored.Date,
		Medications:  len(stored.Data.Medications),
		Warnings:     len(stored.Data.Warnings),
	}
	if err := s.publisher.PublishScheduleApproved(ctx, ev); err != nil {
		s.log.Warn("approval event not published", map[string]any{
			"record_id": stored.ID,
			"error":     err.Error(),
		})
	}

	s.log.Info("schedule approved", map[string]any{
		"patient_id":    stored.PatientID,
		"record_id":     stored.ID,
		"schedule_name": stored.ScheduleName,
	})
	return stored, nil
}

// approvalRecordID es estable por sesión: cada sesión se aprueba una sola vez.
func approvalRecordID(sessionID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("med-reconciliation/approval/"+sessionID)).String()
}

// Revise abre un DRAFT nuevo a partir de una copia de un registro aprobado.
// El registro original no cambia.
func (s *Service) Revise(ctx context.Context, patientID, recordID string) (Session, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return Session{}, ErrInvalidInput
	}

	rec, err := s.history.Get(ctx, recordID)
	if err != nil {
		return Session{}, err
	}
	if rec.PatientID != patientID {
		return Session{}, history.ErrNotFound
	}

	s.editMu.Lock()
	defer s.editMu.Unlock()

	name := ""
	if cur, err := s.Get(ctx, patientID); err == nil {
		name = cur.PatientName
	}

	sess := NewSession(s.newID(), patientID, name, rec.Data, s.now())
	if err := s.repo.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	s.log.Info("revision started", map[string]any{
		"patient_id": patientID,
		"from":       rec.ID,
		"session_id": sess.ID,
	})
	return sess, nil
}

// Report arma el reporte de la sesión actual, traducido si se puede.
func (s *Service) Report(ctx context.Context, patientID, language string) (report.Document, translation.View, error) {
	sess, err := s.Get(ctx, patientID)
	if err != nil {
		return report.Document{}, translation.View{}, err
	}
	view := s.tr.Localize(ctx, sess.Result, language)
	return report.Build(view.Result, sess.ScheduleName, sess.LastUpdated, view.Labels), view, nil
}

type noopPublisher struct{}

func (noopPublisher) PublishScheduleApproved(context.Context, events.ScheduleApproved) error {
	return nil
}
