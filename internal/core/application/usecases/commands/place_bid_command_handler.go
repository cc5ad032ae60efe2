package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// PlaceBidCommandHandler records a bid, reserves its vehicle and records the
// carrier's BIDDED interaction in one transaction.
//
// Preconditions, first failure wins:
//   - the load exists, is CREATED and its bidding deadline is ahead
//   - the carrier has not interacted with the load
//   - the vehicle exists, belongs to the carrier and is AVAILABLE
//   - the vehicle type is required by the load and its capacity covers it
//   - the amount and the estimated hours are positive
type PlaceBidCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	policy     services.EligibilityPolicy
}

func NewPlaceBidCommandHandler(uowFactory UoWFactory, clock ports.Clock) PlaceBidCommandHandler {
	return PlaceBidCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		policy:     services.NewEligibilityPolicy(),
	}
}

func (h PlaceBidCommandHandler) Handle(ctx context.Context, cmd PlaceBidCommand) error {
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

	now := h.clock.Now()

	l, err := uow.LoadRepository().GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return err
	}
	if err = l.CheckOpenForBidding(now); err != nil {
		return err
	}

	if err = ensureNoInteraction(ctx, uow.InteractionRepository(), cmd.CarrierID(), cmd.LoadID()); err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	v, err := vehicleRepo.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckVehicle(l, v, cmd.CarrierID()); err != nil {
		return err
	}

	b, err := bid.NewBid(cmd.BidID(), l.ID(), cmd.CarrierID(), v.ID(), cmd.Amount(), cmd.EstimatedHours(), now)
	if err != nil {
		return err
	}
	if err = v.MarkBidded(); err != nil {
		return err
	}
	record, err := interaction.NewInteraction(kernel.NewUUID(), cmd.CarrierID(), l.ID(), interaction.Bidded, now)
	if err != nil {
		return err
	}

	if err = uow.BidRepository().Add(ctx, b); err != nil {
		return err
	}
	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}
	if err = uow.InteractionRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureNoInteraction fails with a conflict when the carrier already bid on
// or declined the load.
func ensureNoInteraction(
	ctx context.Context,
	repo ports.InteractionRepository,
	carrierID, loadID kernel.UUID,
) error {
	prior, err := repo.Get(ctx, carrierID, loadID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	case err != nil:
		return err
	default:
		return errs.NewConflictError("interaction", prior.Kind())
	}
}
