package commands

import (
	"context"
)

type MarkMaintenanceCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkMaintenanceCommandHandler(uowFactory UoWFactory) MarkMaintenanceCommandHandler {
	return MarkMaintenanceCommandHandler{uowFactory: uowFactory}
}

func (h MarkMaintenanceCommandHandler) Handle(ctx context.Context, cmd MarkMaintenanceCommand) error {
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
	if err = v.EnterMaintenance(); err != nil {
		return err
	}
	if err = repo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
