package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrShipperBidDetailQueryIsNotConstructed = errors.New(
	"ShipperBidDetailQuery must be created via NewShipperBidDetailQuery constructor",
)

// ShipperBidDetailQuery is a shipper weighing one bid before accepting it.
type ShipperBidDetailQuery struct {
	shipperID kernel.UUID
	bidID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewShipperBidDetailQuery(shipperID, bidID kernel.UUID) (ShipperBidDetailQuery, error) {
	if err := errors.Join(shipperID.Validate(), bidID.Validate()); err != nil {
		return ShipperBidDetailQuery{}, err
	}
	return ShipperBidDetailQuery{shipperID: shipperID, bidID: bidID, guard: guard.NewConstructorGuard()}, nil
}

func (q ShipperBidDetailQuery) Validate() error {
	return q.guard.Validate(ErrShipperBidDetailQueryIsNotConstructed)
}

func (q ShipperBidDetailQuery) ShipperID() kernel.UUID {
	return q.shipperID
}

func (q ShipperBidDetailQuery) BidID() kernel.UUID {
	return q.bidID
}
