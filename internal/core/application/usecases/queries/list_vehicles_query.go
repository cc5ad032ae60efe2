package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery lists a carrier's whole fleet, retired vehicles included.
type ListVehiclesQuery struct {
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListVehiclesQuery(carrierID kernel.UUID) (ListVehiclesQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return ListVehiclesQuery{}, err
	}
	return ListVehiclesQuery{carrierID: carrierID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

func (q ListVehiclesQuery) CarrierID() kernel.UUID {
	return q.carrierID
}
