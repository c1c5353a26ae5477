package redis

import (
	"errors"
	"testing"
	"time"

	"med-reconciliation/internal/domain/medications"
	"med-reconciliation/internal/domain/review"

	goredis "github.com/redis/go-redis/v9"
)

func sampleSession() review.Session {
	res := medications.Empty()
	res.Medications = append(res.Medications, medications.Medication{
		ID:       "m1",
		Name:     "Metformin",
		Dosage:   "500mg",
		Source:   medications.SourceHospital,
		Category: medications.CategoryRx,
	})
	res.Schedule.Add(medications.SlotMorning, "m1")
	res.Schedule.Add(medications.SlotEvening, "m1")
	return review.NewSession("s1", "p1", "Jane", res, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
}

func TestKey(t *testing.T) {
	if got := Key("p-42"); got != "session:p-42" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestEncodeDecodeSession_RoundTrip(t *testing.T) {
	in := sampleSession()

	payload, err := encodeSession(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := decodeSession("p1", payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID != "s1" || out.Status != review.StatusDraft || out.SchemaVersion != in.SchemaVersion {
		t.Fatalf("unexpected session %#v", out)
	}
	if slots := out.Result.Schedule.SlotsOf("m1"); len(slots) != 2 {
		t.Fatalf("expected schedule preserved, got %v", slots)
	}
	if !out.CreatedAt.Equal(in.CreatedAt) {
		t.Fatalf("expected createdAt preserved, got %v", out.CreatedAt)
	}

	if _, err := decodeSession("p1", []byte(`{"id":`)); err == nil {
		t.Fatalf("expected decode error for corrupt payload")
	}
}

func TestSessionErr_MapsMissingKey(t *testing.T) {
	if err := sessionErr(goredis.Nil); !errors.Is(err, review.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	other := errors.New("connection refused")
	if err := sessionErr(other); !errors.Is(err, other) || errors.Is(err, review.ErrNotFound) {
		t.Fatalf("expected other errors untouched, got %v", err)
	}
}

func TestNewSessionRepo_NegativeTTLMeansNoExpiry(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	if r := NewSessionRepo(client, -time.Second); r.ttl != 0 {
		t.Fatalf("expected ttl clamped to 0, got %s", r.ttl)
	}
	if r := NewSessionRepo(client, time.Hour); r.ttl != time.Hour {
		t.Fatalf("expected ttl kept, got %s", r.ttl)
	}
}
