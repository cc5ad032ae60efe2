package commands

import (
	"context"

	"freight/internal/core/ports"
)

type UpdateVehicleDetailsCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewUpdateVehicleDetailsCommandHandler(uowFactory UoWFactory, clock ports.Clock) UpdateVehicleDetailsCommandHandler {
	return UpdateVehicleDetailsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle edits an AVAILABLE or MAINTENANCE vehicle of the carrier. A number
// another vehicle already carries is a conflict.
func (h UpdateVehicleDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleDetailsCommand) error {
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

	repo := uow.VehicleRepository()
	v, err := getOwnedVehicleForUpdate(ctx, repo, cmd.CarrierID(), cmd.VehicleID())
	if err != nil {
		return err
	}
	if err = v.UpdateDetails(cmd.ApplyTo(v.Spec()), h.clock.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
