package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand reports that the assigned carrier delivered the load.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkDeliveredCommand(carrierID, loadID kernel.UUID) (MarkDeliveredCommand, error) {
	if err := errors.Join(carrierID.Validate(), loadID.Validate()); err != nil {
		return MarkDeliveredCommand{}, err
	}
	return MarkDeliveredCommand{
		carrierID: carrierID,
		loadID:    loadID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c MarkDeliveredCommand) LoadID() kernel.UUID {
	return c.loadID
}
