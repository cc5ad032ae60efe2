package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAcceptBidCommandIsNotConstructed = errors.New(
	"AcceptBidCommand must be created via NewAcceptBidCommand constructor",
)

// AcceptBidCommand is a shipper choosing the winning bid on one of their loads.
type AcceptBidCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID
	bidID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptBidCommand(shipperID, bidID kernel.UUID) (AcceptBidCommand, error) {
	if err := errors.Join(shipperID.Validate(), bidID.Validate()); err != nil {
		return AcceptBidCommand{}, err
	}
	return AcceptBidCommand{
		shipperID: shipperID,
		bidID:     bidID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptBidCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBidCommandIsNotConstructed)
}

func (c AcceptBidCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c AcceptBidCommand) BidID() kernel.UUID {
	return c.bidID
}
