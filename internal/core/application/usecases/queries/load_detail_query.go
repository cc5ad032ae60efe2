package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrLoadDetailQueryIsNotConstructed = errors.New(
	"LoadDetailQuery must be created via NewLoadDetailQuery constructor",
)

// LoadDetailQuery is a carrier opening one load.
type LoadDetailQuery struct {
	carrierID kernel.UUID
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewLoadDetailQuery(carrierID, loadID kernel.UUID) (LoadDetailQuery, error) {
	if err := errors.Join(carrierID.Validate(), loadID.Validate()); err != nil {
		return LoadDetailQuery{}, err
	}
	return LoadDetailQuery{carrierID: carrierID, loadID: loadID, guard: guard.NewConstructorGuard()}, nil
}

func (q LoadDetailQuery) Validate() error {
	return q.guard.Validate(ErrLoadDetailQueryIsNotConstructed)
}

func (q LoadDetailQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

func (q LoadDetailQuery) LoadID() kernel.UUID {
	return q.loadID
}
