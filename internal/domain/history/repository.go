package history

import "context"

// Repository es append-only: no hay Update ni Delete.
type Repository interface {
	Append(ctx context.Context, r Record) error
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)
	Count(ctx context.Context, patientID string) (int, error)
}

type ListFilter struct {
	PatientID string // opcional
	Limit     int    // 0 = sin límite
}
