package memory

import (
	"context"
	"errors"
	"sync"

	"med-reconciliation/internal/domain/history"
)

type historyRepo struct {
	mu    sync.RWMutex
	byID  map[string]history.Record
	order []string // orden de inserción
}

func NewHistoryRepo() history.Repository {
	return &historyRepo{
		byID: make(map[string]history.Record),
	}
}

func (r *historyRepo) Append(ctx context.Context, rec history.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("history record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return history.ErrDuplicate
	}

	r.byID[rec.ID] = rec.Clone()
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *historyRepo) Get(ctx context.Context, id string) (history.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return history.Record{}, history.ErrNotFound
	}
	return rec.Clone(), nil
}

func (r *historyRepo) List(ctx context.Context, filter history.ListFilter) ([]history.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.Record, 0, len(r.order))
	for _, id := range r.order {
		rec := r.byID[id]
		if filter.PatientID != "" && rec.PatientID != filter.PatientID {
			continue
		}
		out = append(out, rec.Clone())
	}

	// Orden por fecha desc (más reciente primero)
	history.SortNewestFirst(out)

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *historyRepo) Count(ctx context.Context, patientID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, rec := range r.byID {
		if patientID == "" || rec.PatientID == patientID {
			n++
		}
	}
	return n, nil
}
