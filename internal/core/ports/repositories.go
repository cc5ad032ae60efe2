// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories, the unit of work, the clock and the event
// publisher. Adapters implement them; command and query handlers consume them.
package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/shipper"
	"freight/internal/core/domain/model/vehicle"
)

// Every Get returns an errs.ObjectNotFoundError when the row does not exist,
// and every Add returns an errs.ConflictError when a unique key is taken.
//
// GetForUpdate variants lock the rows they read until the transaction ends.
// Handlers that lock several kinds of rows do so in the order
// load -> bids -> vehicles -> carrier so that concurrent transactions queue
// instead of deadlocking.

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	Add(ctx context.Context, aggregate *load.Load) error
	Update(ctx context.Context, aggregate *load.Load) error
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// ListOpenForBidding returns CREATED loads whose bidding deadline is after
	// now and on which carrierID has not interacted, earliest deadline first.
	ListOpenForBidding(ctx context.Context, carrierID kernel.UUID, now time.Time) ([]*load.Load, error)
}

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetManyForUpdate locks the given vehicles in id order. Missing ids are
	// reported as not found.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*vehicle.Vehicle, error)

	// ListByCarrier returns every vehicle of the carrier, newest first.
	ListByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*vehicle.Vehicle, error)

	// ListAvailableByCarrier returns the carrier's AVAILABLE vehicles, newest first.
	ListAvailableByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*vehicle.Vehicle, error)

	// HasHistory reports whether any bid or load references the vehicle.
	HasHistory(ctx context.Context, id kernel.UUID) (bool, error)
}

// BidRepository defines the persistence contract for bid aggregates.
type BidRepository interface {
	Add(ctx context.Context, aggregate *bid.Bid) error
	Update(ctx context.Context, aggregate *bid.Bid) error
	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// ListPendingByLoadForUpdate locks and returns every PENDING bid on the load.
	ListPendingByLoadForUpdate(ctx context.Context, loadID kernel.UUID) ([]*bid.Bid, error)
}

// InteractionRepository stores the one interaction a carrier may have with a load.
type InteractionRepository interface {
	// Add returns an errs.ConflictError if the carrier already interacted with the load.
	Add(ctx context.Context, entity *interaction.Interaction) error
	Get(ctx context.Context, carrierID, loadID kernel.UUID) (*interaction.Interaction, error)
}

// RatingRepository stores carrier ratings, at most one per load.
type RatingRepository interface {
	Add(ctx context.Context, entity *carrier.Rating) error
	ExistsForLoad(ctx context.Context, loadID kernel.UUID) (bool, error)
}

// CarrierRepository defines the persistence contract for carrier aggregates.
type CarrierRepository interface {
	Add(ctx context.Context, aggregate *carrier.Carrier) error
	Update(ctx context.Context, aggregate *carrier.Carrier) error
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)
}

// ShipperRepository defines the persistence contract for shipper aggregates.
type ShipperRepository interface {
	Add(ctx context.Context, aggregate *shipper.Shipper) error
	Get(ctx context.Context, id kernel.UUID) (*shipper.Shipper, error)
}
