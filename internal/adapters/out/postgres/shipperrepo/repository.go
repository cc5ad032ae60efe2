// Package shipperrepo persists shipper aggregates.
package shipperrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipper"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShipperDTO struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Profile      pgtypes.ProfileDTO `gorm:"embedded"`
	IndustryType string             `gorm:"type:varchar(30);not null"`
	CreatedAt    time.Time          `gorm:"not null"`
}

func (ShipperDTO) TableName() string {
	return "shippers"
}

type GormShipperRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.AggregateRoot)
}

func NewGormShipperRepository(db *gorm.DB, tracker aggregateTracker) *GormShipperRepository {
	return &GormShipperRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormShipperRepository) Add(ctx context.Context, aggregate *shipper.Shipper) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	p := aggregate.Profile()
	var existing ShipperDTO
	err := r.db.WithContext(ctx).
		Where("contact_email = ? OR contact_number = ? OR gst_number = ?", p.Email(), p.ContactNumber(), p.GSTNumber()).
		Take(&existing).Error
	switch {
	case err == nil:
		return pgtypes.ProfileConflict(existing.Profile, p)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	dto := ShipperDTO{
		ID:           aggregate.ID().Bytes(),
		Profile:      pgtypes.ProfileFromDomain(p),
		IndustryType: aggregate.IndustryType().String(),
		CreatedAt:    aggregate.CreatedAt(),
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgtypes.Conflict(err, "shipper", p.Email())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormShipperRepository) Get(ctx context.Context, id kernel.UUID) (*shipper.Shipper, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipperDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgtypes.NotFound(err, "shipper", id)
	}

	profile, profileErr := dto.Profile.ToDomain()
	industry, industryErr := shipper.ParseIndustryType(dto.IndustryType)
	if err := errors.Join(profileErr, industryErr); err != nil {
		return nil, err
	}
	return shipper.RestoreShipper(id, profile, industry, dto.CreatedAt)
}
