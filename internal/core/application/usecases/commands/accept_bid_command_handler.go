package commands

import (
	"context"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// AcceptBidCommandHandler assigns a load to the winner of its auction.
//
// A bid that is no longer PENDING is refused before ownership is looked at.
// The load row is then locked before anything else is decided, so two
// requests for the same load run one after the other and the second one
// fails with an invalid state error instead of producing a second winner.
// The resolver re-checks the target under that lock.
type AcceptBidCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	resolver   services.BidResolver
}

func NewAcceptBidCommandHandler(uowFactory UoWFactory, clock ports.Clock) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		resolver:   services.NewBidResolver(),
	}
}

func (h AcceptBidCommandHandler) Handle(ctx context.Context, cmd AcceptBidCommand) error {
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

	bidRepo := uow.BidRepository()
	target, err := bidRepo.Get(ctx, cmd.BidID())
	if err != nil {
		return err
	}
	if target.Status() != bid.Pending {
		return errs.NewInvalidStateError("bid is no longer pending")
	}

	loadRepo := uow.LoadRepository()
	l, err := loadRepo.GetForUpdate(ctx, target.LoadID())
	if err != nil {
		return err
	}
	if !l.IsOwnedBy(cmd.ShipperID()) {
		return errs.NewForbiddenError("load does not belong to this shipper")
	}

	pending, err := bidRepo.ListPendingByLoadForUpdate(ctx, l.ID())
	if err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	vehicles, err := vehicleRepo.GetManyForUpdate(ctx, vehicleIDs(pending))
	if err != nil {
		return err
	}

	res, err := h.resolver.Resolve(l, target.ID(), pending, vehicles, h.clock.Now())
	if err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return err
	}
	for _, b := range append([]*bid.Bid{res.Accepted}, res.Rejected...) {
		if err = bidRepo.Update(ctx, b); err != nil {
			return err
		}
	}
	if err = vehicleRepo.Update(ctx, res.Booked); err != nil {
		return err
	}
	for _, v := range res.Released {
		if err = vehicleRepo.Update(ctx, v); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func vehicleIDs(bids []*bid.Bid) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(bids))
	for _, b := range bids {
		ids = append(ids, b.VehicleID())
	}
	return ids
}
