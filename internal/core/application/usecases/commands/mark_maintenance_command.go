package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrMarkMaintenanceCommandIsNotConstructed = errors.New(
	"MarkMaintenanceCommand must be created via NewMarkMaintenanceCommand constructor",
)

// MarkMaintenanceCommand takes an AVAILABLE vehicle out of service.
type MarkMaintenanceCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkMaintenanceCommand(carrierID, vehicleID kernel.UUID) (MarkMaintenanceCommand, error) {
	if err := errors.Join(carrierID.Validate(), vehicleID.Validate()); err != nil {
		return MarkMaintenanceCommand{}, err
	}
	return MarkMaintenanceCommand{
		carrierID: carrierID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrMarkMaintenanceCommandIsNotConstructed)
}

func (c MarkMaintenanceCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c MarkMaintenanceCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
