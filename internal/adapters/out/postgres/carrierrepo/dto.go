// Package carrierrepo persists carrier aggregates.
package carrierrepo

import (
	"errors"
	"time"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO keeps the rating as a running total and count; queries derive
// the displayed mean.
type CarrierDTO struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Profile     pgtypes.ProfileDTO `gorm:"embedded"`
	FleetSize   int                `gorm:"not null;default:0"`
	RatingTotal int                `gorm:"not null;default:0"`
	RatingCount int                `gorm:"not null;default:0"`
	TotalTrips  int                `gorm:"not null;default:0"`
	CreatedAt   time.Time          `gorm:"not null"`
}

func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(c *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:          c.ID().Bytes(),
		Profile:     pgtypes.ProfileFromDomain(c.Profile()),
		FleetSize:   c.FleetSize(),
		RatingTotal: c.RatingTotal(),
		RatingCount: c.RatingCount(),
		TotalTrips:  c.TotalTrips(),
		CreatedAt:   c.CreatedAt(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	profile, profileErr := dto.Profile.ToDomain()
	if err := errors.Join(idErr, profileErr); err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(carrier.State{
		ID:          id,
		Profile:     profile,
		FleetSize:   dto.FleetSize,
		RatingTotal: dto.RatingTotal,
		RatingCount: dto.RatingCount,
		TotalTrips:  dto.TotalTrips,
		CreatedAt:   dto.CreatedAt,
	})
}
