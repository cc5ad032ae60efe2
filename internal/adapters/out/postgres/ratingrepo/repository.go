// Package ratingrepo stores carrier ratings, at most one per load.
package ratingrepo

import (
	"context"
	"time"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ShipperID uuid.UUID `gorm:"type:uuid;not null"`
	CarrierID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"type:smallint;not null;check:rating BETWEEN 1 AND 5"`
	CreatedAt time.Time `gorm:"not null"`
}

func (RatingDTO) TableName() string {
	return "carrier_ratings"
}

type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Add reports a second rating for the same load as a conflict.
func (r *GormRatingRepository) Add(ctx context.Context, entity *carrier.Rating) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := RatingDTO{
		ID:        entity.ID().Bytes(),
		LoadID:    entity.LoadID().Bytes(),
		ShipperID: entity.ShipperID().Bytes(),
		CarrierID: entity.CarrierID().Bytes(),
		Rating:    entity.Score(),
		CreatedAt: entity.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgtypes.Conflict(err, "rating", entity.LoadID())
	}
	return nil
}

func (r *GormRatingRepository) ExistsForLoad(ctx context.Context, loadID kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&RatingDTO{}).
		Where("load_id = ?", loadID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
