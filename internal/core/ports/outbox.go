package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored by the unit of work in the same
// transaction as the change that raised it.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	Name        string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges stored events for the relay.
type OutboxRepository interface {
	// ListUnpublished locks up to limit unpublished messages, oldest first,
	// skipping rows another relay already holds.
	ListUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
