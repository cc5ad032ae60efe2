// Package kafka publishes relayed outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"freight/internal/core/ports"
	"freight/internal/observability"

	skafka "github.com/segmentio/kafka-go"
)

const (
	HeaderEventName  = "event-name"
	HeaderEventID    = "event-id"
	HeaderOccurredAt = "occurred-at"
)

// Writer is the part of kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// EventPublisher writes outbox messages keyed by aggregate id, so every event
// of one load, bid or vehicle lands on the same partition in commit order.
type EventPublisher struct {
	writer Writer
}

var _ ports.EventPublisher = (*EventPublisher)(nil)

func NewEventPublisher(broker, topic string) *EventPublisher {
	return &EventPublisher{
		writer: &skafka.Writer{
			Addr:         skafka.TCP(broker),
			Topic:        topic,
			Balancer:     &skafka.Hash{},
			RequiredAcks: skafka.RequireAll,
		},
	}
}

func NewEventPublisherWithWriter(w Writer) *EventPublisher {
	return &EventPublisher{writer: w}
}

// Publish writes the batch in one call. The writer is all-or-nothing from
// the relay's point of view: on error the whole batch is retried later.
func (p *EventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]skafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, skafka.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Headers: []skafka.Header{
				{Key: HeaderEventName, Value: []byte(m.Name)},
				{Key: HeaderEventID, Value: []byte(m.ID.String())},
				{Key: HeaderOccurredAt, Value: []byte(m.OccurredAt.UTC().Format(time.RFC3339Nano))},
			},
			Time: m.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("failed to publish %d events: %w", len(batch), err)
	}

	for _, m := range messages {
		observability.EventsPublished.WithLabelValues(m.Name).Inc()
	}
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
