package commands

import (
	"context"

	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"
)

// AddVehicleCommandHandler stores a new AVAILABLE vehicle and grows the
// carrier's fleet size. A registration number already in use is a conflict.
type AddVehicleCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewAddVehicleCommandHandler(uowFactory UoWFactory, clock ports.Clock) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AddVehicleCommandHandler) Handle(ctx context.Context, cmd AddVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.CarrierID(), cmd.Spec(), h.clock.Now())
	if err != nil {
		return err
	}

	carrierRepo := uow.CarrierRepository()
	c, err := carrierRepo.GetForUpdate(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return err
	}
	c.IncrementFleet()
	if err = carrierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
