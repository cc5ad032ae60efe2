package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

type UpdateVehicleStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateVehicleStatusCommandHandler(uowFactory UoWFactory) UpdateVehicleStatusCommandHandler {
	return UpdateVehicleStatusCommandHandler{uowFactory: uowFactory}
}

func (h UpdateVehicleStatusCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleStatusCommand) error {
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
	if err = v.RequestStatus(cmd.Target()); err != nil {
		return err
	}
	if err = repo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func getOwnedVehicleForUpdate(
	ctx context.Context,
	repo ports.VehicleRepository,
	carrierID, vehicleID kernel.UUID,
) (*vehicle.Vehicle, error) {
	v, err := repo.GetForUpdate(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !v.IsOwnedBy(carrierID) {
		return nil, errs.NewForbiddenError("vehicle does not belong to this carrier")
	}
	return v, nil
}
