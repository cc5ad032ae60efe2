package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// CreateLoadCommand posts a new load on behalf of a shipper.
//
// Example:
//
//	cmd, err := NewCreateLoadCommand(kernel.NewUUID(), shipperID, input)
//	if err != nil {
//	    return err // addresses or vehicle types did not parse
//	}
//	err = NewCreateLoadCommandHandler(uowFactory, clock).Handle(ctx, cmd)
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	draft  load.Draft

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand parses the addresses and vehicle types of in and
// collects every parse error. Business rules are checked by the handler.
func NewCreateLoadCommand(loadID, shipperID kernel.UUID, in LoadInput) (CreateLoadCommand, error) {
	pickup, pickupErr := in.Pickup.build("pickup")
	delivery, deliveryErr := in.Delivery.build("delivery")
	types, typesErr := kernel.ParseVehicleTypeSet(in.RequiredVehicleTypes)

	if err := errors.Join(
		loadID.Validate(),
		shipperID.Validate(),
		pickupErr,
		deliveryErr,
		typesErr,
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return CreateLoadCommand{
		loadID: loadID,
		draft: load.Draft{
			ShipperID:            shipperID,
			Pickup:               pickup,
			Delivery:             delivery,
			Material:             in.Material,
			Description:          in.Description,
			WeightTons:           in.WeightTons,
			VolumeLitres:         in.VolumeLitres,
			RequiredTypes:        types.Types(),
			BudgetPrice:          in.BudgetPrice,
			BiddingDeadline:      in.BiddingDeadline,
			PickupDate:           in.PickupDate,
			ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c CreateLoadCommand) ShipperID() kernel.UUID {
	return c.draft.ShipperID
}

func (c CreateLoadCommand) Draft() load.Draft {
	return c.draft
}
