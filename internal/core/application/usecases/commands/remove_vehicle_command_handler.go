package commands

import (
	"context"

	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"
)

// RemoveVehicleCommandHandler deletes a vehicle that never took part in a
// bid or load and retires every other one. Either way the carrier's fleet
// size shrinks by one. The returned Removal tells the caller which happened.
type RemoveVehicleCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewRemoveVehicleCommandHandler(uowFactory UoWFactory, clock ports.Clock) RemoveVehicleCommandHandler {
	return RemoveVehicleCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RemoveVehicleCommandHandler) Handle(ctx context.Context, cmd RemoveVehicleCommand) (vehicle.Removal, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	v, err := getOwnedVehicleForUpdate(ctx, vehicleRepo, cmd.CarrierID(), cmd.VehicleID())
	if err != nil {
		return 0, err
	}

	hasHistory, err := vehicleRepo.HasHistory(ctx, v.ID())
	if err != nil {
		return 0, err
	}

	removal, err := v.Remove(hasHistory, h.clock.Now())
	if err != nil {
		return 0, err
	}

	carrierRepo := uow.CarrierRepository()
	c, err := carrierRepo.GetForUpdate(ctx, cmd.CarrierID())
	if err != nil {
		return 0, err
	}
	if err = c.DecrementFleet(); err != nil {
		return 0, err
	}

	if removal == vehicle.HardDelete {
		err = vehicleRepo.Delete(ctx, v.ID())
	} else {
		err = vehicleRepo.Update(ctx, v)
	}
	if err != nil {
		return 0, err
	}
	if err = carrierRepo.Update(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return removal, nil
}
