// Package vehiclerepo persists vehicle aggregates.
package vehiclerepo

import (
	"errors"
	"time"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO stores dimensions as zero for tankers and height as zero for
// flatbeds.
type VehicleDTO struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CarrierID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	VehicleNumber     string              `gorm:"type:varchar(20);not null;uniqueIndex"`
	VehicleType       string              `gorm:"type:varchar(30);not null"`
	Capacity          pgtypes.CapacityDTO `gorm:"embedded;embeddedPrefix:capacity_"`
	LengthFt          float64             `gorm:"not null;default:0"`
	WidthFt           float64             `gorm:"not null;default:0"`
	HeightFt          float64             `gorm:"not null;default:0"`
	ManufacturingYear int                 `gorm:"type:smallint;not null"`
	Status            string              `gorm:"type:varchar(20);not null;index"`
	CreatedAt         time.Time           `gorm:"not null"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:                v.ID().Bytes(),
		CarrierID:         v.CarrierID().Bytes(),
		VehicleNumber:     v.Number().String(),
		VehicleType:       v.Type().String(),
		Capacity:          pgtypes.CapacityFromDomain(v.Capacity()),
		LengthFt:          v.Dimensions().LengthFt,
		WidthFt:           v.Dimensions().WidthFt,
		HeightFt:          v.Dimensions().HeightFt,
		ManufacturingYear: v.ManufacturingYear(),
		Status:            v.Status().String(),
		CreatedAt:         v.CreatedAt(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	carrierID, carrierErr := kernel.UUIDFromBytes(dto.CarrierID[:])
	vehicleType, typeErr := kernel.ParseVehicleType(dto.VehicleType)
	capacity, capacityErr := dto.Capacity.ToDomain()
	status, statusErr := vehicle.ParseStatus(dto.Status)
	if err := errors.Join(idErr, carrierErr, typeErr, capacityErr, statusErr); err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(vehicle.State{
		ID:        id,
		CarrierID: carrierID,
		Number:    dto.VehicleNumber,
		Type:      vehicleType,
		Capacity:  capacity,
		Dimensions: vehicle.Dimensions{
			LengthFt: dto.LengthFt,
			WidthFt:  dto.WidthFt,
			HeightFt: dto.HeightFt,
		},
		ManufacturingYear: dto.ManufacturingYear,
		Status:            status,
		CreatedAt:         dto.CreatedAt,
	})
}

func toDomainList(dtos []VehicleDTO) ([]*vehicle.Vehicle, error) {
	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}
