package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRateCarrierCommandIsNotConstructed = errors.New(
	"RateCarrierCommand must be created via NewRateCarrierCommand constructor",
)

// RateCarrierCommand is a shipper scoring the carrier of a delivered load.
type RateCarrierCommand struct { //nolint:recvcheck //using for validation
	ratingID  kernel.UUID
	shipperID kernel.UUID
	loadID    kernel.UUID
	score     int

	guard guard.ConstructorGuard
}

// NewRateCarrierCommand only checks identifiers. The score range is a rule
// of the carrier aggregate.
func NewRateCarrierCommand(ratingID, shipperID, loadID kernel.UUID, score int) (RateCarrierCommand, error) {
	if err := errors.Join(ratingID.Validate(), shipperID.Validate(), loadID.Validate()); err != nil {
		return RateCarrierCommand{}, err
	}
	return RateCarrierCommand{
		ratingID:  ratingID,
		shipperID: shipperID,
		loadID:    loadID,
		score:     score,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrRateCarrierCommandIsNotConstructed)
}

func (c RateCarrierCommand) RatingID() kernel.UUID {
	return c.ratingID
}

func (c RateCarrierCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c RateCarrierCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c RateCarrierCommand) Score() int {
	return c.score
}
