package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipper"
	"freight/internal/pkg/guard"
)

var ErrRegisterShipperCommandIsNotConstructed = errors.New(
	"RegisterShipperCommand must be created via NewRegisterShipperCommand constructor",
)

// RegisterShipperCommand creates a shipper account's marketplace profile.
type RegisterShipperCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID
	profile   kernel.Profile
	industry  shipper.IndustryType

	guard guard.ConstructorGuard
}

func NewRegisterShipperCommand(shipperID kernel.UUID, in ProfileInput, industryType string) (RegisterShipperCommand, error) {
	profile, profileErr := in.build()
	industry, industryErr := shipper.ParseIndustryType(industryType)
	if err := errors.Join(shipperID.Validate(), profileErr, industryErr); err != nil {
		return RegisterShipperCommand{}, err
	}
	return RegisterShipperCommand{
		shipperID: shipperID,
		profile:   profile,
		industry:  industry,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterShipperCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShipperCommandIsNotConstructed)
}

func (c RegisterShipperCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c RegisterShipperCommand) Profile() kernel.Profile {
	return c.profile
}

func (c RegisterShipperCommand) IndustryType() shipper.IndustryType {
	return c.industry
}
