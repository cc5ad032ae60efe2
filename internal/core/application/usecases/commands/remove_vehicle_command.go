package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRemoveVehicleCommandIsNotConstructed = errors.New(
	"RemoveVehicleCommand must be created via NewRemoveVehicleCommand constructor",
)

// RemoveVehicleCommand takes a vehicle out of a carrier's fleet.
type RemoveVehicleCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveVehicleCommand(carrierID, vehicleID kernel.UUID) (RemoveVehicleCommand, error) {
	if err := errors.Join(carrierID.Validate(), vehicleID.Validate()); err != nil {
		return RemoveVehicleCommand{}, err
	}
	return RemoveVehicleCommand{
		carrierID: carrierID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRemoveVehicleCommandIsNotConstructed)
}

func (c RemoveVehicleCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c RemoveVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
