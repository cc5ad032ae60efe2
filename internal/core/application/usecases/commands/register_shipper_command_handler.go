package commands

import (
	"context"

	"freight/internal/core/domain/model/shipper"
	"freight/internal/core/ports"
)

type RegisterShipperCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewRegisterShipperCommandHandler(uowFactory UoWFactory, clock ports.Clock) RegisterShipperCommandHandler {
	return RegisterShipperCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RegisterShipperCommandHandler) Handle(ctx context.Context, cmd RegisterShipperCommand) error {
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

	s, err := shipper.NewShipper(cmd.ShipperID(), cmd.Profile(), cmd.IndustryType(), h.clock.Now())
	if err != nil {
		return err
	}
	if err = uow.ShipperRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
