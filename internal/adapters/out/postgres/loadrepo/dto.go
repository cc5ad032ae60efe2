// Package loadrepo persists load aggregates.
package loadrepo

import (
	"errors"
	"time"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LoadDTO struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ShipperID            uuid.UUID           `gorm:"type:uuid;not null;index"`
	Pickup               pgtypes.AddressDTO  `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery             pgtypes.AddressDTO  `gorm:"embedded;embeddedPrefix:delivery_"`
	Material             string              `gorm:"type:varchar(255);not null"`
	Description          string              `gorm:"type:varchar(500);not null;default:''"`
	Requirement          pgtypes.CapacityDTO `gorm:"embedded;embeddedPrefix:requirement_"`
	RequiredVehicleTypes []string            `gorm:"type:jsonb;serializer:json;not null"`
	BudgetPrice          decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	BiddingDeadline      time.Time           `gorm:"not null;index"`
	PickupDate           time.Time           `gorm:"not null"`
	ExpectedDeliveryDate time.Time           `gorm:"not null"`
	SelectedCarrierID    *uuid.UUID          `gorm:"type:uuid;index"`
	AssignedVehicleID    *uuid.UUID          `gorm:"type:uuid;index"`
	Status               string              `gorm:"type:varchar(20);not null;index"`
	CreatedAt            time.Time           `gorm:"not null"`
}

func (LoadDTO) TableName() string {
	return "loads"
}

func fromDomain(l *load.Load) LoadDTO {
	return LoadDTO{
		ID:                   l.ID().Bytes(),
		ShipperID:            l.ShipperID().Bytes(),
		Pickup:               pgtypes.AddressFromDomain(l.Pickup()),
		Delivery:             pgtypes.AddressFromDomain(l.Delivery()),
		Material:             l.Material(),
		Description:          l.Description(),
		Requirement:          pgtypes.CapacityFromDomain(l.Requirement()),
		RequiredVehicleTypes: l.RequiredTypes().Strings(),
		BudgetPrice:          l.Budget().Amount(),
		BiddingDeadline:      l.Schedule().BiddingDeadline(),
		PickupDate:           l.Schedule().PickupDate(),
		ExpectedDeliveryDate: l.Schedule().ExpectedDeliveryDate(),
		SelectedCarrierID:    pgtypes.UUIDPtr(l.SelectedCarrier()),
		AssignedVehicleID:    pgtypes.UUIDPtr(l.AssignedVehicle()),
		Status:               l.Status().String(),
		CreatedAt:            l.CreatedAt(),
	}
}

func toDomain(dto LoadDTO) (*load.Load, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	shipperID, shipperErr := kernel.UUIDFromBytes(dto.ShipperID[:])
	pickup, pickupErr := dto.Pickup.ToDomain("pickup")
	delivery, deliveryErr := dto.Delivery.ToDomain("delivery")
	requirement, requirementErr := dto.Requirement.ToDomain()
	types, typesErr := kernel.ParseVehicleTypeSet(dto.RequiredVehicleTypes)
	budget, budgetErr := kernel.NewMoney("budgetPrice", dto.BudgetPrice)
	schedule, scheduleErr := load.RestoreSchedule(dto.BiddingDeadline, dto.PickupDate, dto.ExpectedDeliveryDate)
	selectedCarrier, carrierErr := pgtypes.UUIDFromPtr(dto.SelectedCarrierID)
	assignedVehicle, vehicleErr := pgtypes.UUIDFromPtr(dto.AssignedVehicleID)
	status, statusErr := load.ParseStatus(dto.Status)

	if err := errors.Join(
		idErr, shipperErr, pickupErr, deliveryErr, requirementErr, typesErr,
		budgetErr, scheduleErr, carrierErr, vehicleErr, statusErr,
	); err != nil {
		return nil, err
	}

	return load.RestoreLoad(load.State{
		ID:              id,
		ShipperID:       shipperID,
		Pickup:          pickup,
		Delivery:        delivery,
		Material:        dto.Material,
		Description:     dto.Description,
		Requirement:     requirement,
		RequiredTypes:   types,
		Budget:          budget,
		Schedule:        schedule,
		SelectedCarrier: selectedCarrier,
		AssignedVehicle: assignedVehicle,
		Status:          status,
		CreatedAt:       dto.CreatedAt,
	})
}
