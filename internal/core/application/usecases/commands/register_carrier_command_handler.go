package commands

import (
	"context"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/ports"
)

type RegisterCarrierCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewRegisterCarrierCommandHandler(uowFactory UoWFactory, clock ports.Clock) RegisterCarrierCommandHandler {
	return RegisterCarrierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores a carrier with an empty fleet and no ratings. An id, email or
// GST number already registered is a conflict.
func (h RegisterCarrierCommandHandler) Handle(ctx context.Context, cmd RegisterCarrierCommand) error {
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

	c, err := carrier.NewCarrier(cmd.CarrierID(), cmd.Profile(), h.clock.Now())
	if err != nil {
		return err
	}
	if err = uow.CarrierRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
