package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand reports that the assigned carrier picked up the load.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartTransitCommand(carrierID, loadID kernel.UUID) (StartTransitCommand, error) {
	if err := errors.Join(carrierID.Validate(), loadID.Validate()); err != nil {
		return StartTransitCommand{}, err
	}
	return StartTransitCommand{
		carrierID: carrierID,
		loadID:    loadID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

func (c StartTransitCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c StartTransitCommand) LoadID() kernel.UUID {
	return c.loadID
}
