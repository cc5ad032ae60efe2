package postgres

import (
	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/adapters/out/postgres/carrierrepo"
	"freight/internal/adapters/out/postgres/interactionrepo"
	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/adapters/out/postgres/outboxrepo"
	"freight/internal/adapters/out/postgres/ratingrepo"
	"freight/internal/adapters/out/postgres/shipperrepo"
	"freight/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Tables lists every table Migrate creates, in truncation-safe order.
var Tables = []string{
	"carrier_ratings",
	"carrier_load_interactions",
	"bids",
	"loads",
	"vehicles",
	"carriers",
	"shippers",
	"outbox",
}

// Migrate creates or updates the marketplace schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&shipperrepo.ShipperDTO{},
		&carrierrepo.CarrierDTO{},
		&vehiclerepo.VehicleDTO{},
		&loadrepo.LoadDTO{},
		&bidrepo.BidDTO{},
		&interactionrepo.InteractionDTO{},
		&ratingrepo.RatingDTO{},
		&outboxrepo.OutboxDTO{},
	)
}
