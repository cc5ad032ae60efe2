// Package bidrepo persists bid aggregates.
package bidrepo

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BidDTO struct {
	ID                        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LoadID                    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CarrierID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	VehicleID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	BidAmount                 decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EstimatedTransitTimeHours int             `gorm:"not null"`
	Status                    string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt                 time.Time       `gorm:"not null"`
}

func (BidDTO) TableName() string {
	return "bids"
}

func fromDomain(b *bid.Bid) BidDTO {
	return BidDTO{
		ID:                        b.ID().Bytes(),
		LoadID:                    b.LoadID().Bytes(),
		CarrierID:                 b.CarrierID().Bytes(),
		VehicleID:                 b.VehicleID().Bytes(),
		BidAmount:                 b.Amount().Amount(),
		EstimatedTransitTimeHours: b.EstimatedHours(),
		Status:                    b.Status().String(),
		CreatedAt:                 b.CreatedAt(),
	}
}

func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	loadID, loadErr := kernel.UUIDFromBytes(dto.LoadID[:])
	carrierID, carrierErr := kernel.UUIDFromBytes(dto.CarrierID[:])
	vehicleID, vehicleErr := kernel.UUIDFromBytes(dto.VehicleID[:])
	amount, amountErr := kernel.NewMoney("bidAmount", dto.BidAmount)
	status, statusErr := bid.ParseStatus(dto.Status)
	if err := errors.Join(idErr, loadErr, carrierErr, vehicleErr, amountErr, statusErr); err != nil {
		return nil, err
	}

	return bid.RestoreBid(bid.State{
		ID:             id,
		LoadID:         loadID,
		CarrierID:      carrierID,
		VehicleID:      vehicleID,
		Amount:         amount,
		EstimatedHours: dto.EstimatedTransitTimeHours,
		Status:         status,
		CreatedAt:      dto.CreatedAt,
	})
}
