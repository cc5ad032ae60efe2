package commands

import (
	"context"

	"freight/internal/core/ports"
)

// StartTransitCommandHandler moves an ASSIGNED load and its BOOKED vehicle
// to IN_TRANSIT.
type StartTransitCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewStartTransitCommandHandler(uowFactory UoWFactory, clock ports.Clock) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
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

	loadRepo := uow.LoadRepository()
	l, err := loadRepo.GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return err
	}
	if err = l.StartTransit(cmd.CarrierID(), h.clock.Now()); err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	v, err := vehicleRepo.GetForUpdate(ctx, *l.AssignedVehicle())
	if err != nil {
		return err
	}
	if err = v.StartTransit(); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return err
	}
	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
