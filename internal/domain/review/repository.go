package review

import "context"

// Repository guarda una sesión de trabajo por paciente, sobrescrita completa.
// Get devuelve ErrNotFound si el paciente no tiene sesión.
type Repository interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, patientID string) (Session, error)
}
