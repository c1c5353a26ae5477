// Package kafka publica eventos de aprobación de horarios.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"med-reconciliation/internal/platform/logger"
	"med-reconciliation/internal/ports/events"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	DefaultTopic = "medication-schedules"

	eventTypeApproved = "schedule.approved"
	eventSource       = "med-reconciliation"
)

type Publisher struct {
	writer *kafkago.Writer
	log    logger.Logger
}

func NewPublisher(brokers []string, topic string, log logger.Logger) (*Publisher, error) {
	clean := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			clean = append(clean, b)
		}
	}
	if len(clean) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if strings.TrimSpace(topic) == "" {
		topic = DefaultTopic
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Publisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(clean...),
			Topic:        topic,
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireAll,
			Async:        false,
			BatchSize:    1,
			BatchTimeout: 10 * time.Millisecond,
		},
		log: log,
	}, nil
}

func (p *Publisher) PublishScheduleApproved(ctx context.Context, ev events.ScheduleApproved) error {
	msg, err := approvedMessage(ev)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("failed to publish event", map[string]any{
			"record_id":  ev.RecordID,
			"event_type": eventTypeApproved,
			"error":      err.Error(),
		})
		return fmt.Errorf("kafka publish: %w", err)
	}

	p.log.Info("event published", map[string]any{
		"record_id":  ev.RecordID,
		"event_type": eventTypeApproved,
		"topic":      p.writer.Topic,
	})
	return nil
}

// approvedMessage usa patient_id como key: los eventos de un paciente quedan
// en la misma partición y en orden.
func approvedMessage(ev events.ScheduleApproved) (kafkago.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("marshal event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(ev.PatientID),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event-type", Value: []byte(eventTypeApproved)},
			{Key: "source", Value: []byte(eventSource)},
		},
		Time: ev.ApprovedAt,
	}, nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
