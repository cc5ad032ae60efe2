// Package outboxrepo stores domain events next to the change that raised
// them and hands them to the relay.
package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OutboxDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// AddEvents serializes each event as JSON into the outbox.
func (r *GormOutboxRepository) AddEvents(ctx context.Context, events []kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxDTO, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", event.EventName(), err)
		}
		dtos = append(dtos, OutboxDTO{
			ID:          event.EventID().Bytes(),
			AggregateID: event.AggregateID().Bytes(),
			Name:        event.EventName(),
			Payload:     payload,
			OccurredAt:  event.OccurredAt(),
		})
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ListUnpublished skips rows locked by another relay so two instances never
// publish the same batch.
func (r *GormOutboxRepository) ListUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
		if err != nil {
			return nil, err
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			AggregateID: aggregateID,
			Name:        dto.Name,
			Payload:     dto.Payload,
			OccurredAt:  dto.OccurredAt,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return r.db.WithContext(ctx).
		Model(&OutboxDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at.UTC()).Error
}
