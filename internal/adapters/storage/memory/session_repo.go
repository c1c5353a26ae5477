package memory

import (
	"context"
	"errors"
	"sync"

	"med-reconciliation/internal/domain/review"
)

type sessionRepo struct {
	mu        sync.RWMutex
	byPatient map[string]review.Session
}

func NewSessionRepo() review.Repository {
	return &sessionRepo{
		byPatient: make(map[string]review.Session),
	}
}

// Save reemplaza la sesión completa del paciente.
func (r *sessionRepo) Save(ctx context.Context, s review.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.PatientID == "" {
		return errors.New("session patient id required")
	}
	c := s
	c.Result = s.Result.Clone()
	r.byPatient[s.PatientID] = c
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, patientID string) (review.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byPatient[patientID]
	if !ok {
		return review.Session{}, review.ErrNotFound
	}
	s.Result = s.Result.Clone()
	return s, nil
}
