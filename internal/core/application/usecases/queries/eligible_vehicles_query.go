package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrEligibleVehiclesQueryIsNotConstructed = errors.New(
	"EligibleVehiclesQuery must be created via NewEligibleVehiclesQuery constructor",
)

// EligibleVehiclesQuery lists which of a carrier's vehicles could bid on a load.
type EligibleVehiclesQuery struct {
	carrierID kernel.UUID
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewEligibleVehiclesQuery(carrierID, loadID kernel.UUID) (EligibleVehiclesQuery, error) {
	if err := errors.Join(carrierID.Validate(), loadID.Validate()); err != nil {
		return EligibleVehiclesQuery{}, err
	}
	return EligibleVehiclesQuery{carrierID: carrierID, loadID: loadID, guard: guard.NewConstructorGuard()}, nil
}

func (q EligibleVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrEligibleVehiclesQueryIsNotConstructed)
}

func (q EligibleVehiclesQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

func (q EligibleVehiclesQuery) LoadID() kernel.UUID {
	return q.loadID
}
