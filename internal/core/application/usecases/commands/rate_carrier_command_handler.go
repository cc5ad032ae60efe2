package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// RateCarrierCommandHandler records the single rating a delivered load may
// receive and folds it into the carrier's average.
type RateCarrierCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewRateCarrierCommandHandler(uowFactory UoWFactory, clock ports.Clock) RateCarrierCommandHandler {
	return RateCarrierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RateCarrierCommandHandler) Handle(ctx context.Context, cmd RateCarrierCommand) error {
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

	l, err := uow.LoadRepository().GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return err
	}
	if !l.IsOwnedBy(cmd.ShipperID()) {
		return errs.NewForbiddenError("load does not belong to this shipper")
	}
	if l.Status() != load.Delivered {
		return errs.NewInvalidStateErrorWithCause(
			"load has not been delivered",
			fmt.Errorf("load is %s", l.Status()),
		)
	}

	ratingRepo := uow.RatingRepository()
	rated, err := ratingRepo.ExistsForLoad(ctx, l.ID())
	if err != nil {
		return err
	}
	if rated {
		return errs.NewConflictError("rating", l.ID())
	}

	carrierRepo := uow.CarrierRepository()
	c, err := carrierRepo.GetForUpdate(ctx, *l.SelectedCarrier())
	if err != nil {
		return err
	}
	rating, err := c.Rate(cmd.RatingID(), l.ID(), cmd.ShipperID(), cmd.Score(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = ratingRepo.Add(ctx, rating); err != nil {
		return err
	}
	if err = carrierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
