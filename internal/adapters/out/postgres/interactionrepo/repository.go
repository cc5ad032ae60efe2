// Package interactionrepo stores the single interaction a carrier may have
// with a load. The (carrier_id, load_id) unique index is what makes a
// concurrent second bid or decline fail.
package interactionrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InteractionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interaction_carrier_load"`
	LoadID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interaction_carrier_load;index"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (InteractionDTO) TableName() string {
	return "carrier_load_interactions"
}

type GormInteractionRepository struct {
	db *gorm.DB
}

func NewGormInteractionRepository(db *gorm.DB) *GormInteractionRepository {
	return &GormInteractionRepository{db: db}
}

func (r *GormInteractionRepository) Add(ctx context.Context, entity *interaction.Interaction) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := InteractionDTO{
		ID:        entity.ID().Bytes(),
		CarrierID: entity.CarrierID().Bytes(),
		LoadID:    entity.LoadID().Bytes(),
		Kind:      entity.Kind().String(),
		CreatedAt: entity.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgtypes.Conflict(err, "interaction", entity.LoadID())
	}
	return nil
}

func (r *GormInteractionRepository) Get(
	ctx context.Context,
	carrierID, loadID kernel.UUID,
) (*interaction.Interaction, error) {
	if err := errors.Join(carrierID.Validate(), loadID.Validate()); err != nil {
		return nil, err
	}

	var dto InteractionDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "carrier_id = ? AND load_id = ?", carrierID.Bytes(), loadID.Bytes()).Error; err != nil {
		return nil, pgtypes.NotFound(err, "interaction", loadID)
	}

	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	kind, kindErr := interaction.ParseKind(dto.Kind)
	if err := errors.Join(idErr, kindErr); err != nil {
		return nil, err
	}
	return interaction.RestoreInteraction(id, carrierID, loadID, kind, dto.CreatedAt)
}
