// Package redis guarda la sesión de trabajo de cada paciente en Redis.
// Útil cuando varias réplicas de la API atienden al mismo revisor.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"med-reconciliation/internal/domain/review"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type SessionRepo struct {
	client *goredis.Client
	ttl    time.Duration // 0 = sin expiración
}

func NewSessionRepo(client *goredis.Client, ttl time.Duration) *SessionRepo {
	// go-redis interpreta -1 como KeepTTL
	if ttl < 0 {
		ttl = 0
	}
	return &SessionRepo{client: client, ttl: ttl}
}

// Open crea el cliente y hace ping.
func Open(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func Key(patientID string) string {
	return keyPrefix + patientID
}

func (r *SessionRepo) Save(ctx context.Context, s review.Session) error {
	payload, err := encodeSession(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, Key(s.PatientID), payload, r.ttl).Err()
}

func (r *SessionRepo) Get(ctx context.Context, patientID string) (review.Session, error) {
	payload, err := r.client.Get(ctx, Key(patientID)).Bytes()
	if err != nil {
		return review.Session{}, sessionErr(err)
	}
	return decodeSession(patientID, payload)
}

func sessionErr(err error) error {
	if errors.Is(err, goredis.Nil) {
		return review.ErrNotFound
	}
	return err
}

func encodeSession(s review.Session) ([]byte, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	return payload, nil
}

func decodeSession(patientID string, payload []byte) (review.Session, error) {
	var s review.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return review.Session{}, fmt.Errorf("decode session %s: %w", patientID, err)
	}
	return s, nil
}
