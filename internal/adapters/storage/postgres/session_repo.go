package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"med-reconciliation/internal/domain/review"
)

type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Save hace upsert del registro completo (no hay updates parciales).
func (r *SessionRepo) Save(ctx context.Context, s review.Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO review_sessions (patient_id, id, status, schema_version, payload, last_updated)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (patient_id) DO UPDATE SET
			id = EXCLUDED.id,
			status = EXCLUDED.status,
			schema_version = EXCLUDED.schema_version,
			payload = EXCLUDED.payload,
			last_updated = EXCLUDED.last_updated
	`,
		s.PatientID,
		s.ID,
		string(s.Status),
		s.SchemaVersion,
		payload,
		s.LastUpdated,
	)
	return err
}

func (r *SessionRepo) Get(ctx context.Context, patientID string) (review.Session, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT payload FROM review_sessions WHERE patient_id = $1
	`, patientID).Scan(&payload)
	if err != nil {
		return review.Session{}, sessionErr(err)
	}
	return decodeSession(patientID, payload)
}

func sessionErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return review.ErrNotFound
	}
	return err
}

func decodeSession(patientID string, payload []byte) (review.Session, error) {
	var s review.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return review.Session{}, fmt.Errorf("decode session %s: %w", patientID, err)
	}
	return s, nil
}
