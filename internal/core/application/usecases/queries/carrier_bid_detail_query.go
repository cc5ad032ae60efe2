package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCarrierBidDetailQueryIsNotConstructed = errors.New(
	"CarrierBidDetailQuery must be created via NewCarrierBidDetailQuery constructor",
)

// CarrierBidDetailQuery is a carrier opening one of its own bids.
type CarrierBidDetailQuery struct {
	carrierID kernel.UUID
	bidID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewCarrierBidDetailQuery(carrierID, bidID kernel.UUID) (CarrierBidDetailQuery, error) {
	if err := errors.Join(carrierID.Validate(), bidID.Validate()); err != nil {
		return CarrierBidDetailQuery{}, err
	}
	return CarrierBidDetailQuery{carrierID: carrierID, bidID: bidID, guard: guard.NewConstructorGuard()}, nil
}

func (q CarrierBidDetailQuery) Validate() error {
	return q.guard.Validate(ErrCarrierBidDetailQueryIsNotConstructed)
}

func (q CarrierBidDetailQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

func (q CarrierBidDetailQuery) BidID() kernel.UUID {
	return q.bidID
}
