package commands

import (
	"context"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
)

// CreateLoadCommandHandler stores a new CREATED load for an existing shipper.
type CreateLoadCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewCreateLoadCommandHandler(uowFactory UoWFactory, clock ports.Clock) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle fails with not found when the shipper does not exist and with the
// collected field errors when the draft breaks load rules.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) error {
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

	if _, err := uow.ShipperRepository().Get(ctx, cmd.ShipperID()); err != nil {
		return err
	}

	l, err := load.NewLoad(cmd.LoadID(), cmd.Draft(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.LoadRepository().Add(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
