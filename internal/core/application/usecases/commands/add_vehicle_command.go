package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrAddVehicleCommandIsNotConstructed = errors.New(
	"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
)

// AddVehicleCommand registers a vehicle in a carrier's fleet.
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	carrierID kernel.UUID
	spec      vehicle.Spec

	guard guard.ConstructorGuard
}

func NewAddVehicleCommand(vehicleID, carrierID kernel.UUID, in VehicleInput) (AddVehicleCommand, error) {
	var typeErr error
	vehicleType := kernel.UnknownVehicleType
	if in.Type == "" {
		typeErr = errs.NewValueIsRequiredError("vehicleType")
	} else {
		vehicleType, typeErr = kernel.ParseVehicleType(in.Type)
	}

	if err := errors.Join(vehicleID.Validate(), carrierID.Validate(), typeErr); err != nil {
		return AddVehicleCommand{}, err
	}

	return AddVehicleCommand{
		vehicleID: vehicleID,
		carrierID: carrierID,
		spec: vehicle.Spec{
			Number:         in.Number,
			Type:           vehicleType,
			CapacityTons:   in.CapacityTons,
			CapacityLitres: in.CapacityLitres,
			Dimensions: vehicle.Dimensions{
				LengthFt: in.LengthFt,
				WidthFt:  in.WidthFt,
				HeightFt: in.HeightFt,
			},
			ManufacturingYear: in.ManufacturingYear,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

func (c AddVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c AddVehicleCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c AddVehicleCommand) Spec() vehicle.Spec {
	return c.spec
}
