package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/pkg/guard"
)

var ErrUpdateVehicleStatusCommandIsNotConstructed = errors.New(
	"UpdateVehicleStatusCommand must be created via NewUpdateVehicleStatusCommand constructor",
)

// UpdateVehicleStatusCommand is a carrier moving a vehicle in or out of maintenance.
type UpdateVehicleStatusCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	vehicleID kernel.UUID
	target    vehicle.Status

	guard guard.ConstructorGuard
}

func NewUpdateVehicleStatusCommand(carrierID, vehicleID kernel.UUID, status string) (UpdateVehicleStatusCommand, error) {
	target, statusErr := vehicle.ParseStatus(status)
	if err := errors.Join(carrierID.Validate(), vehicleID.Validate(), statusErr); err != nil {
		return UpdateVehicleStatusCommand{}, err
	}
	return UpdateVehicleStatusCommand{
		carrierID: carrierID,
		vehicleID: vehicleID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateVehicleStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleStatusCommandIsNotConstructed)
}

func (c UpdateVehicleStatusCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c UpdateVehicleStatusCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c UpdateVehicleStatusCommand) Target() vehicle.Status {
	return c.target
}
