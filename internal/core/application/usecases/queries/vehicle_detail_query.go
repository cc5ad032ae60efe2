package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrVehicleDetailQueryIsNotConstructed = errors.New(
	"VehicleDetailQuery must be created via NewVehicleDetailQuery constructor",
)

type VehicleDetailQuery struct {
	carrierID kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewVehicleDetailQuery(carrierID, vehicleID kernel.UUID) (VehicleDetailQuery, error) {
	if err := errors.Join(carrierID.Validate(), vehicleID.Validate()); err != nil {
		return VehicleDetailQuery{}, err
	}
	return VehicleDetailQuery{carrierID: carrierID, vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (q VehicleDetailQuery) Validate() error {
	return q.guard.Validate(ErrVehicleDetailQueryIsNotConstructed)
}

func (q VehicleDetailQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

func (q VehicleDetailQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}
