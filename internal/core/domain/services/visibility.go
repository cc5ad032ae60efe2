package services

import (
	"fmt"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

// VisibilityPolicy decides which details each party may read.
type VisibilityPolicy struct{}

func NewVisibilityPolicy() VisibilityPolicy {
	return VisibilityPolicy{}
}

// CheckCarrierLoad gates a carrier's view of a load. A CREATED load is open to
// every carrier until its pickup date, after which it has expired. Once it has
// left CREATED only carriers that bid on it may still see it.
func (VisibilityPolicy) CheckCarrierLoad(l *load.Load, prior *interaction.Interaction, now time.Time) error {
	if l.Status() == load.Created {
		if l.Schedule().PickupReached(now) {
			return errs.NewInvalidStateError("load has expired")
		}
		return nil
	}
	if prior == nil || prior.Kind() != interaction.Bidded {
		return errs.NewForbiddenError("load is no longer available to this carrier")
	}
	return nil
}

// CheckCarrierBid gates a carrier's view of its own bid. Only PENDING and
// ACCEPTED bids are shown, and not once the load is delivered or has expired
// without an assignment.
func (VisibilityPolicy) CheckCarrierBid(b *bid.Bid, l *load.Load, carrierID kernel.UUID, now time.Time) error {
	if !b.IsPlacedBy(carrierID) {
		return errs.NewForbiddenError("bid was placed by another carrier")
	}
	if b.Status() == bid.Rejected {
		return errs.NewInvalidStateErrorWithCause("bid is no longer active", fmt.Errorf("bid is %s", b.Status()))
	}
	if l.Status() == load.Delivered {
		return errs.NewInvalidStateError("load has been delivered")
	}
	if l.Status() == load.Created && l.Schedule().PickupReached(now) {
		return errs.NewInvalidStateError("load has expired")
	}
	return nil
}

// CheckShipperLoad gates the assignment view of a shipper's load, which only
// exists while the load is ASSIGNED or IN_TRANSIT.
func (VisibilityPolicy) CheckShipperLoad(l *load.Load, shipperID kernel.UUID) error {
	if !l.IsOwnedBy(shipperID) {
		return errs.NewForbiddenError("load belongs to another shipper")
	}
	if l.Status() != load.Assigned && l.Status() != load.InTransit {
		return errs.NewInvalidStateErrorWithCause(
			"load has no active assignment",
			fmt.Errorf("load is %s", l.Status()),
		)
	}
	return nil
}

// CheckShipperBids gates the bid listing of a shipper's load: it must still be CREATED.
func (VisibilityPolicy) CheckShipperBids(l *load.Load, shipperID kernel.UUID) error {
	if !l.IsOwnedBy(shipperID) {
		return errs.NewForbiddenError("load belongs to another shipper")
	}
	if l.Status() != load.Created {
		return errs.NewInvalidStateErrorWithCause("load is no longer accepting bids", fmt.Errorf("load is %s", l.Status()))
	}
	return nil
}

// CheckShipperBid gates a single PENDING bid on a shipper's CREATED load that
// has not passed its pickup date.
func (p VisibilityPolicy) CheckShipperBid(b *bid.Bid, l *load.Load, shipperID kernel.UUID, now time.Time) error {
	if err := p.CheckShipperBids(l, shipperID); err != nil {
		return err
	}
	if l.Schedule().PickupReached(now) {
		return errs.NewInvalidStateError("load has expired")
	}
	if b.Status() != bid.Pending {
		return errs.NewInvalidStateErrorWithCause("bid is no longer pending", fmt.Errorf("bid is %s", b.Status()))
	}
	return nil
}
