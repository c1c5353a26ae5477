package history

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("history record not found")
	ErrDuplicate    = errors.New("history record already exists")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Append guarda una copia profunda del registro.
func (s *Service) Append(ctx context.Context, r Record) (Record, error) {
	r.ID = strings.TrimSpace(r.ID)
	r.PatientID = strings.TrimSpace(r.PatientID)
	r.ScheduleName = strings.TrimSpace(r.ScheduleName)
	if r.ID == "" || r.PatientID == "" || r.ScheduleName == "" {
		return Record{}, ErrInvalidInput
	}
	for _, m := range r.Data.Medications {
		if err := m.Validate(); err != nil {
			return Record{}, err
		}
	}
	if r.Date.IsZero() {
		r.Date = s.now().UTC()
	}

	stored := r.Clone()
	stored.Data.Normalize()
	if err := s.repo.Append(ctx, stored); err != nil {
		return Record{}, err
	}
	return stored.Clone(), nil
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return r.Clone(), nil
}

// List devuelve siempre más reciente primero, sin importar el orden del repo.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	filter.PatientID = strings.TrimSpace(filter.PatientID)
	if filter.Limit < 0 {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(items))
	for _, r := range items {
		out = append(out, r.Clone())
	}
	SortNewestFirst(out)

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *Service) Count(ctx context.Context, patientID string) (int, error) {
	return s.repo.Count(ctx, strings.TrimSpace(patientID))
}

// SortNewestFirst ordena por fecha descendente; empates por id.
func SortNewestFirst(items []Record) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].ID < items[j].ID
	})
}
