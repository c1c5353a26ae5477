package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"med-reconciliation/internal/ports/events"
)

func TestApprovedMessage(t *testing.T) {
	at := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	msg, err := approvedMessage(events.ScheduleApproved{
		RecordID:     "r1",
		PatientID:    "p1",
		ScheduleName: "Schedule 1",
		ApprovedAt:   at,
		Medications:  3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(msg.Key) != "p1" || !msg.Time.Equal(at) {
		t.Fatalf("unexpected key/time %q %v", msg.Key, msg.Time)
	}
	if len(msg.Headers) != 2 || string(msg.Headers[0].Value) != "schedule.approved" {
		t.Fatalf("unexpected headers %#v", msg.Headers)
	}

	var decoded map[string]any
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if decoded["record_id"] != "r1" || decoded["medications"] != float64(3) {
		t.Fatalf("unexpected payload %#v", decoded)
	}
}

func TestNewPublisher_RequiresBrokers(t *testing.T) {
	if _, err := NewPublisher([]string{" ", ""}, "", nil); err == nil {
		t.Fatalf("expected error without brokers")
	}
	p, err := NewPublisher([]string{"localhost:9092"}, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.writer.Topic != DefaultTopic {
		t.Fatalf("expected default topic, got %q", p.writer.Topic)
	}
	_ = p.Close()
}
