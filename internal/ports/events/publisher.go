package events

import (
	"context"
	"time"
)

// ScheduleApproved se emite cuando un horario queda aprobado en el historial.
type ScheduleApproved struct {
	RecordID     string    `json:"record_id"`
	PatientID    string    `json:"patient_id"`
	ScheduleName string    `json:"schedule_name"`
	ApprovedBy   string    `json:"approved_by,omitempty"`
	ApprovedAt   time.Time `json:"approved_at"`
	Medications  int       `json:"medications"`
	Warnings     int       `json:"warnings"`
}

// Publisher publica eventos de dominio. La entrega es best-effort.
type Publisher interface {
	PublishScheduleApproved(ctx context.Context, ev ScheduleApproved) error
}
