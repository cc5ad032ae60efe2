package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPlaceBidCommandIsNotConstructed = errors.New(
	"PlaceBidCommand must be created via NewPlaceBidCommand constructor",
)

// PlaceBidCommand offers one of a carrier's vehicles for a load at a price.
// Amount and estimated hours are checked last, after every load and vehicle
// precondition, so the command only validates identifiers.
type PlaceBidCommand struct { //nolint:recvcheck //using for validation
	bidID          kernel.UUID
	carrierID      kernel.UUID
	loadID         kernel.UUID
	vehicleID      kernel.UUID
	amount         decimal.Decimal
	estimatedHours int

	guard guard.ConstructorGuard
}

func NewPlaceBidCommand(
	bidID, carrierID, loadID, vehicleID kernel.UUID,
	amount decimal.Decimal,
	estimatedHours int,
) (PlaceBidCommand, error) {
	if err := errors.Join(
		bidID.Validate(),
		carrierID.Validate(),
		loadID.Validate(),
		vehicleID.Validate(),
	); err != nil {
		return PlaceBidCommand{}, err
	}
	return PlaceBidCommand{
		bidID:          bidID,
		carrierID:      carrierID,
		loadID:         loadID,
		vehicleID:      vehicleID,
		amount:         amount,
		estimatedHours: estimatedHours,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceBidCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
}

func (c PlaceBidCommand) BidID() kernel.UUID {
	return c.bidID
}

func (c PlaceBidCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c PlaceBidCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c PlaceBidCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c PlaceBidCommand) Amount() decimal.Decimal {
	return c.amount
}

func (c PlaceBidCommand) EstimatedHours() int {
	return c.estimatedHours
}
