package review

import (
	"fmt"
	"strings"
	"time"

	"med-reconciliation/internal/domain/history"
	"med-reconciliation/internal/domain/medications"
)

// Status del flujo de revisión. Un único campo reemplaza los flags sueltos.
// @Enum DRAFT, UNDER_REVIEW, APPROVED
type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
)

// SchemaVersion del registro persistido. 0 = registros previos sin versión.
const SchemaVersion = 1

// Field editable por el revisor.
// @Enum name, dosage, frequency, instructions, category
type Field string

const (
	FieldName         Field = "name"
	FieldDosage       Field = "dosage"
	FieldFrequency    Field = "frequency"
	FieldInstructions Field = "instructions"
	FieldCategory     Field = "category"
)

// Diagnostics cuenta referencias que no resolvieron o resolvieron por nombre.
type Diagnostics struct {
	MissingReferences int `json:"missingReferences"`
	NameFallbacks     int `json:"nameFallbacks"`
}

// Session es el registro de trabajo de un paciente; se guarda completo en cada cambio.
type Session struct {
	ID               string                     `json:"id"`
	PatientID        string                     `json:"patientId"`
	PatientName      string                     `json:"patientName"`
	Status           Status                     `json:"status"`
	ScheduleName     string                     `json:"scheduleName,omitempty"`
	Result           medications.AnalysisResult `json:"result"`
	Diagnostics      Diagnostics                `json:"diagnostics"`
	SchemaVersion    int                        `json:"schemaVersion"`
	CreatedAt        time.Time                  `json:"createdAt"`
	LastUpdated      time.Time                  `json:"lastUpdated"`
	ApprovedRecordID string                     `json:"approvedRecordId,omitempty"`
}

// NewSession arranca en DRAFT con una copia propia del resultado.
func NewSession(id, patientID, patientName string, res medications.AnalysisResult, now time.Time) Session {
	r := res.Clone()
	r.Normalize()
	return Session{
		ID:            id,
		PatientID:     patientID,
		PatientName:   strings.TrimSpace(patientName),
		Status:        StatusDraft,
		Result:        r,
		SchemaVersion: SchemaVersion,
		CreatedAt:     now,
		LastUpdated:   now,
	}
}

// Upgrade migra registros viejos. Versiones futuras no se leen.
func (s *Session) Upgrade() error {
	switch {
	case s.SchemaVersion > SchemaVersion:
		return fmt.Errorf("%w: %d", ErrUnsupportedSchema, s.SchemaVersion)
	case s.SchemaVersion == 0:
		if s.Status == "" {
			s.Status = StatusDraft
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = s.LastUpdated
		}
		s.SchemaVersion = SchemaVersion
	}
	s.Result.Normalize()
	return nil
}

func (s *Session) StartReview() error {
	if s.Status != StatusDraft {
		return transitionErr("start review", s.Status)
	}
	s.Status = StatusUnderReview
	return nil
}

// RequestChanges devuelve el horario a DRAFT (p.ej. farmacéutico pide correcciones).
func (s *Session) RequestChanges() error {
	if s.Status != StatusUnderReview {
		return transitionErr("request changes", s.Status)
	}
	s.Status = StatusDraft
	return nil
}

// EditField cambia un campo del medicamento con ese id. Solo resuelve por id.
// Cambiar frequency no vuelve a derivar franjas: el revisor las mueve a mano.
func (s *Session) EditField(id string, field Field, value string) error {
	if s.Status != StatusUnderReview {
		return transitionErr("edit field", s.Status)
	}

	value = strings.TrimSpace(value)
	switch field {
	case FieldName:
		if value == "" {
			return &medications.ValidationError{Field: "name", Reason: "is required"}
		}
	case FieldCategory:
		if _, ok := medications.ParseCategory(value); !ok {
			return &medications.ValidationError{Field: "category", Reason: "must be OTC or Rx"}
		}
	case FieldDosage, FieldFrequency, FieldInstructions:
	default:
		return &medications.ValidationError{Field: "field", Reason: fmt.Sprintf("%q is not editable", field)}
	}

	m, ok := s.Result.Find(strings.TrimSpace(id))
	if !ok {
		s.Diagnostics.MissingReferences++
		return fmt.Errorf("%w: %q", ErrReferenceNotFound, id)
	}

	switch field {
	case FieldName:
		m.Name = value
	case FieldDosage:
		m.Dosage = value
	case FieldFrequency:
		m.Frequency = value
	case FieldInstructions:
		m.Instructions = value
	case FieldCategory:
		m.Category, _ = medications.ParseCategory(value)
	}
	return nil
}

// MoveMedication saca ref de from (no-op si no está) y lo agrega al final de to
// si todavía no está. No exige que ref esté en from.
// ref debe resolver a un medicamento: por id o, degradado, por nombre único.
func (s *Session) MoveMedication(ref string, from, to medications.Slot) error {
	if s.Status != StatusUnderReview {
		return transitionErr("move medication", s.Status)
	}
	if !from.Valid() {
		return &medications.ValidationError{Field: "from", Reason: "must be morning, noon, evening or bedtime"}
	}
	if !to.Valid() {
		return &medications.ValidationError{Field: "to", Reason: "must be morning, noon, evening or bedtime"}
	}

	ref = strings.TrimSpace(ref)
	m, mode := s.Result.Resolve(ref)
	switch mode {
	case medications.ResolvedNone:
		s.Diagnostics.MissingReferences++
		return fmt.Errorf("%w: %q", ErrReferenceNotFound, ref)
	case medications.ResolvedByName:
		s.Diagnostics.NameFallbacks++
	}

	if from == to {
		s.Result.Schedule.Add(to, m.ID)
		return nil
	}

	s.Result.Schedule.Remove(from, ref)
	s.Result.Schedule.Remove(from, m.ID)
	s.Result.Schedule.Add(to, m.ID)
	return nil
}

// Approve congela el resultado en un history.Record independiente.
// Nombre vacío => "Schedule N" con N = existing+1.
func (s *Session) Approve(name string, existing int, recordID string, now time.Time) (history.Record, error) {
	if s.Status != StatusDraft && s.Status != StatusUnderReview {
		return history.Record{}, transitionErr("approve", s.Status)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Schedule %d", existing+1)
	}

	s.Status = StatusApproved
	s.ScheduleName = name
	s.ApprovedRecordID = recordID

	return history.Record{
		ID:           recordID,
		PatientID:    s.PatientID,
		Date:         now,
		ScheduleName: name,
		Data:         s.Result.Clone(),
	}, nil
}

// adopt marca la sesión como aprobada por un registro ya guardado.
func (s *Session) adopt(rec history.Record) error {
	if s.Status != StatusDraft && s.Status != StatusUnderReview {
		return transitionErr("approve", s.Status)
	}
	s.Status = StatusApproved
	s.ScheduleName = rec.ScheduleName
	s.ApprovedRecordID = rec.ID
	return nil
}

func transitionErr(op string, from Status) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, op, from)
}
