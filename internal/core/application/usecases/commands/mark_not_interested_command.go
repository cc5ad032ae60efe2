package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrMarkNotInterestedCommandIsNotConstructed = errors.New(
	"MarkNotInterestedCommand must be created via NewMarkNotInterestedCommand constructor",
)

// MarkNotInterestedCommand hides an open load from a carrier's feed.
type MarkNotInterestedCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotInterestedCommand(carrierID, loadID kernel.UUID) (MarkNotInterestedCommand, error) {
	if err := errors.Join(carrierID.Validate(), loadID.Validate()); err != nil {
		return MarkNotInterestedCommand{}, err
	}
	return MarkNotInterestedCommand{
		carrierID: carrierID,
		loadID:    loadID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotInterestedCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotInterestedCommandIsNotConstructed)
}

func (c MarkNotInterestedCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c MarkNotInterestedCommand) LoadID() kernel.UUID {
	return c.loadID
}
