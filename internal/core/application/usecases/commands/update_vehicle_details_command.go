package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/pkg/guard"
)

var ErrUpdateVehicleDetailsCommandIsNotConstructed = errors.New(
	"UpdateVehicleDetailsCommand must be created via NewUpdateVehicleDetailsCommand constructor",
)

// UpdateVehicleDetailsCommand is a carrier correcting a vehicle's
// registration details. Fields left empty or zero in the input keep their
// current value.
type UpdateVehicleDetailsCommand struct { //nolint:recvcheck //using for validation
	carrierID   kernel.UUID
	vehicleID   kernel.UUID
	vehicleType kernel.VehicleType
	in          VehicleInput

	guard guard.ConstructorGuard
}

func NewUpdateVehicleDetailsCommand(carrierID, vehicleID kernel.UUID, in VehicleInput) (UpdateVehicleDetailsCommand, error) {
	vehicleType := kernel.UnknownVehicleType
	var typeErr error
	if in.Type != "" {
		vehicleType, typeErr = kernel.ParseVehicleType(in.Type)
	}
	if err := errors.Join(carrierID.Validate(), vehicleID.Validate(), typeErr); err != nil {
		return UpdateVehicleDetailsCommand{}, err
	}
	return UpdateVehicleDetailsCommand{
		carrierID:   carrierID,
		vehicleID:   vehicleID,
		vehicleType: vehicleType,
		in:          in,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateVehicleDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleDetailsCommandIsNotConstructed)
}

func (c UpdateVehicleDetailsCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c UpdateVehicleDetailsCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// ApplyTo overlays the submitted fields on current.
func (c UpdateVehicleDetailsCommand) ApplyTo(current vehicle.Spec) vehicle.Spec {
	next := current
	if c.in.Number != "" {
		next.Number = c.in.Number
	}
	if c.vehicleType != kernel.UnknownVehicleType {
		next.Type = c.vehicleType
	}
	if !c.in.CapacityTons.IsZero() {
		next.CapacityTons = c.in.CapacityTons
	}
	if !c.in.CapacityLitres.IsZero() {
		next.CapacityLitres = c.in.CapacityLitres
	}
	if c.in.LengthFt != 0 {
		next.Dimensions.LengthFt = c.in.LengthFt
	}
	if c.in.WidthFt != 0 {
		next.Dimensions.WidthFt = c.in.WidthFt
	}
	if c.in.HeightFt != 0 {
		next.Dimensions.HeightFt = c.in.HeightFt
	}
	if c.in.ManufacturingYear != 0 {
		next.ManufacturingYear = c.in.ManufacturingYear
	}
	return next
}
