package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema es idempotente; lo aplica el comando `migrate`.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS schedule_history (
		id            TEXT PRIMARY KEY,
		patient_id    TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		schedule_name TEXT NOT NULL,
		approved_by   TEXT NOT NULL DEFAULT '',
		data          JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS schedule_history_patient_created_idx
		ON schedule_history (patient_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS review_sessions (
		patient_id     TEXT PRIMARY KEY,
		id             TEXT NOT NULL,
		status         TEXT NOT NULL,
		schema_version INT NOT NULL,
		payload        JSONB NOT NULL,
		last_updated   TIMESTAMPTZ NOT NULL
	)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
