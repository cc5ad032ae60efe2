package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrEligibleLoadsQueryIsNotConstructed = errors.New(
	"EligibleLoadsQuery must be created via NewEligibleLoadsQuery constructor",
)

// EligibleLoadsQuery is a carrier's feed: CREATED loads still open for
// bidding that the carrier has neither bid on nor declined.
type EligibleLoadsQuery struct {
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewEligibleLoadsQuery(carrierID kernel.UUID) (EligibleLoadsQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return EligibleLoadsQuery{}, err
	}
	return EligibleLoadsQuery{carrierID: carrierID, guard: guard.NewConstructorGuard()}, nil
}

func (q EligibleLoadsQuery) Validate() error {
	return q.guard.Validate(ErrEligibleLoadsQueryIsNotConstructed)
}

func (q EligibleLoadsQuery) CarrierID() kernel.UUID {
	return q.carrierID
}
