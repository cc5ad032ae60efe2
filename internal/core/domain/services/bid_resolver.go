package services

import (
	"fmt"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/pkg/errs"
)

// Resolution lists every aggregate BidResolver changed, for the caller to persist.
type Resolution struct {
	Accepted *bid.Bid
	Rejected []*bid.Bid
	Booked   *vehicle.Vehicle
	Released []*vehicle.Vehicle
}

// BidResolver is the domain service behind accepting a bid.
//
// Business rules:
//   - The load must be CREATED with bidding closed and pickup not reached
//   - The winning bid must be among the load's PENDING bids
//   - The winner becomes ACCEPTED and its vehicle BOOKED
//   - Every other PENDING bid becomes REJECTED and its vehicle AVAILABLE
//   - The load becomes ASSIGNED to the winner's carrier and vehicle
//
// pending must be the load's PENDING bids read in the same transaction that
// will persist the resolution, and vehicles must hold the vehicle of each of
// them. Nothing is changed unless every check passes.
//
// Example usage:
//
//	resolver := NewBidResolver()
//	res, err := resolver.Resolve(l, bidID, pendingBids, bidVehicles, clock.Now())
//	if err != nil {
//	    return err // the transaction rolls back
//	}
//	// persist l, res.Accepted, res.Rejected, res.Booked and res.Released
type BidResolver struct{}

func NewBidResolver() BidResolver {
	return BidResolver{}
}

func (r BidResolver) Resolve(
	l *load.Load,
	winnerID kernel.UUID,
	pending []*bid.Bid,
	vehicles []*vehicle.Vehicle,
	now time.Time,
) (Resolution, error) {
	if err := l.Validate(); err != nil {
		return Resolution{}, err
	}
	if err := l.CheckAcceptingBids(now); err != nil {
		return Resolution{}, err
	}

	winner, losers, err := r.splitPending(l, winnerID, pending)
	if err != nil {
		return Resolution{}, err
	}

	byID := make(map[kernel.UUID]*vehicle.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID()] = v
	}
	for _, b := range pending {
		v, ok := byID[b.VehicleID()]
		if !ok {
			return Resolution{}, errs.NewObjectNotFoundError("vehicle", b.VehicleID())
		}
		if v.Status() != vehicle.Bidded {
			return Resolution{}, errs.NewInvalidStateErrorWithCause(
				"vehicle is not reserved by its bid",
				fmt.Errorf("vehicle %s is %s", v.ID(), v.Status()),
			)
		}
	}

	res := Resolution{
		Accepted: winner,
		Rejected: losers,
		Booked:   byID[winner.VehicleID()],
		Released: make([]*vehicle.Vehicle, 0, len(losers)),
	}

	if err = l.Assign(winner.CarrierID(), winner.VehicleID(), now); err != nil {
		return Resolution{}, err
	}
	if err = winner.Accept(now); err != nil {
		return Resolution{}, err
	}
	if err = res.Booked.Book(); err != nil {
		return Resolution{}, err
	}
	for _, b := range losers {
		if err = b.Reject(now); err != nil {
			return Resolution{}, err
		}
		v := byID[b.VehicleID()]
		if err = v.Release(); err != nil {
			return Resolution{}, err
		}
		res.Released = append(res.Released, v)
	}

	return res, nil
}

func (r BidResolver) splitPending(
	l *load.Load,
	winnerID kernel.UUID,
	pending []*bid.Bid,
) (*bid.Bid, []*bid.Bid, error) {
	var winner *bid.Bid
	losers := make([]*bid.Bid, 0, len(pending))
	for _, b := range pending {
		if !b.IsFor(l.ID()) {
			return nil, nil, errs.NewInvalidStateError("bid belongs to another load")
		}
		if b.Status() != bid.Pending {
			return nil, nil, errs.NewInvalidStateError("bid is no longer pending")
		}
		if b.ID().IsEqual(winnerID) {
			winner = b
			continue
		}
		losers = append(losers, b)
	}
	if winner == nil {
		return nil, nil, errs.NewInvalidStateError("bid is no longer pending")
	}
	return winner, losers, nil
}
