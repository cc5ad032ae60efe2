package commands

import (
	"context"

	"freight/internal/core/ports"
)

// MarkDeliveredCommandHandler completes a trip: the load becomes DELIVERED,
// its vehicle returns to AVAILABLE and the carrier's trip count grows by one.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewMarkDeliveredCommandHandler(uowFactory UoWFactory, clock ports.Clock) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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
	if err = l.Deliver(cmd.CarrierID(), h.clock.Now()); err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	v, err := vehicleRepo.GetForUpdate(ctx, *l.AssignedVehicle())
	if err != nil {
		return err
	}
	if err = v.CompleteTrip(); err != nil {
		return err
	}

	carrierRepo := uow.CarrierRepository()
	c, err := carrierRepo.GetForUpdate(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}
	c.RecordTrip()

	if err = loadRepo.Update(ctx, l); err != nil {
		return err
	}
	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}
	if err = carrierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
