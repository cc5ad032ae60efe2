package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrShipperLoadDetailQueryIsNotConstructed = errors.New(
	"ShipperLoadDetailQuery must be created via NewShipperLoadDetailQuery constructor",
)

// ShipperLoadDetailQuery is a shipper following an assigned load: who
// carries it and with which vehicle.
type ShipperLoadDetailQuery struct {
	shipperID kernel.UUID
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewShipperLoadDetailQuery(shipperID, loadID kernel.UUID) (ShipperLoadDetailQuery, error) {
	if err := errors.Join(shipperID.Validate(), loadID.Validate()); err != nil {
		return ShipperLoadDetailQuery{}, err
	}
	return ShipperLoadDetailQuery{shipperID: shipperID, loadID: loadID, guard: guard.NewConstructorGuard()}, nil
}

func (q ShipperLoadDetailQuery) Validate() error {
	return q.guard.Validate(ErrShipperLoadDetailQueryIsNotConstructed)
}

func (q ShipperLoadDetailQuery) ShipperID() kernel.UUID {
	return q.shipperID
}

func (q ShipperLoadDetailQuery) LoadID() kernel.UUID {
	return q.loadID
}
