package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"med-reconciliation/internal/domain/history"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation es el SQLSTATE de Postgres para PK duplicada.
const uniqueViolation = "23505"

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Append(ctx context.Context, rec history.Record) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("marshal history data: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO schedule_history (
			id, patient_id, created_at, schedule_name, approved_by, data
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		rec.ID,
		rec.PatientID,
		rec.Date,
		rec.ScheduleName,
		rec.ApprovedBy,
		data,
	)
	return appendErr(err)
}

func appendErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return history.ErrDuplicate
	}
	return err
}

func (r *HistoryRepo) Get(ctx context.Context, id string) (history.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return history.Record{}, history.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, patient_id, created_at, schedule_name, approved_by, data
		FROM schedule_history
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return history.Record{}, history.ErrNotFound
	}
	return rec, err
}

func (r *HistoryRepo) List(ctx context.Context, filter history.ListFilter) ([]history.Record, error) {
	q := `
		SELECT id, patient_id, created_at, schedule_name, approved_by, data
		FROM schedule_history`
	args := []any{}
	if filter.PatientID != "" {
		args = append(args, filter.PatientID)
		q += fmt.Sprintf(" WHERE patient_id = $%d", len(args))
	}
	q += " ORDER BY created_at DESC, id ASC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]history.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepo) Count(ctx context.Context, patientID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM schedule_history WHERE ($1 = '' OR patient_id = $1)
	`, patientID).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (history.Record, error) {
	var rec history.Record
	var data []byte
	if err := s.Scan(&rec.ID, &rec.PatientID, &rec.Date, &rec.ScheduleName, &rec.ApprovedBy, &data); err != nil {
		return history.Record{}, err
	}
	if err := json.Unmarshal(data, &rec.Data); err != nil {
		return history.Record{}, fmt.Errorf("decode history data %s: %w", rec.ID, err)
	}
	rec.Data.Normalize()
	return rec, nil
}
