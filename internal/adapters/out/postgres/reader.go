package postgres

import (
	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/adapters/out/postgres/carrierrepo"
	"freight/internal/adapters/out/postgres/interactionrepo"
	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/adapters/out/postgres/shipperrepo"
	"freight/internal/adapters/out/postgres/vehiclerepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// Reader serves query handlers with repositories bound to the plain
// connection. Nothing read through it is written back, so it tracks nothing.
type Reader struct {
	db *gorm.DB
}

func NewReader(db *gorm.DB) *Reader {
	return &Reader{db: db}
}

func (r *Reader) LoadRepository() ports.LoadRepository {
	return loadrepo.NewGormLoadRepository(r.db, discardTracker{})
}

func (r *Reader) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(r.db, discardTracker{})
}

func (r *Reader) BidRepository() ports.BidRepository {
	return bidrepo.NewGormBidRepository(r.db, discardTracker{})
}

func (r *Reader) InteractionRepository() ports.InteractionRepository {
	return interactionrepo.NewGormInteractionRepository(r.db)
}

func (r *Reader) CarrierRepository() ports.CarrierRepository {
	return carrierrepo.NewGormCarrierRepository(r.db, discardTracker{})
}

func (r *Reader) ShipperRepository() ports.ShipperRepository {
	return shipperrepo.NewGormShipperRepository(r.db, discardTracker{})
}

type discardTracker struct{}

func (discardTracker) TrackAggregate(kernel.AggregateRoot) {}
