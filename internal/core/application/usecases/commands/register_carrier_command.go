package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRegisterCarrierCommandIsNotConstructed = errors.New(
	"RegisterCarrierCommand must be created via NewRegisterCarrierCommand constructor",
)

// RegisterCarrierCommand creates a carrier account's marketplace profile.
type RegisterCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	profile   kernel.Profile

	guard guard.ConstructorGuard
}

func NewRegisterCarrierCommand(carrierID kernel.UUID, in ProfileInput) (RegisterCarrierCommand, error) {
	profile, profileErr := in.build()
	if err := errors.Join(carrierID.Validate(), profileErr); err != nil {
		return RegisterCarrierCommand{}, err
	}
	return RegisterCarrierCommand{
		carrierID: carrierID,
		profile:   profile,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCarrierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCarrierCommandIsNotConstructed)
}

func (c RegisterCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c RegisterCarrierCommand) Profile() kernel.Profile {
	return c.profile
}
