// Package postgres provides the GORM-based Unit of Work for the marketplace.
// A unit of work spans one marketplace operation: every repository it hands
// out after Begin shares its transaction, and Commit writes the domain events
// of every saved aggregate to the outbox before committing.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	l, err := uow.LoadRepository().GetForUpdate(ctx, loadID)
//	if err != nil {
//	    return err
//	}
//	// ... let the domain decide, then save
//	if err := uow.LoadRepository().Update(ctx, l); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns one transaction; goroutines use separate instances
//   - GetForUpdate reads take row locks, in the order load, bids, vehicles, carrier
//   - Keep transactions short to reduce lock contention
package postgres

import (
	"context"
	"slices"

	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/adapters/out/postgres/carrierrepo"
	"freight/internal/adapters/out/postgres/interactionrepo"
	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/adapters/out/postgres/outboxrepo"
	"freight/internal/adapters/out/postgres/ratingrepo"
	"freight/internal/adapters/out/postgres/shipperrepo"
	"freight/internal/adapters/out/postgres/vehiclerepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work with its own transaction
// and aggregate tracking.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]kernel.AggregateRoot, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates saved through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []kernel.AggregateRoot
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit stores the pending domain events of every tracked aggregate in the
// outbox and commits. If the events cannot be stored the transaction is
// rolled back and nothing is persisted.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	events := make([]kernel.DomainEvent, 0)
	for _, aggregate := range uow.trackedAggregates {
		events = append(events, aggregate.DomainEvents()...)
	}

	if err := outboxrepo.NewGormOutboxRepository(uow.tx).AddEvents(ctx, events); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	for _, aggregate := range uow.trackedAggregates {
		aggregate.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
// Events stay on the aggregates so a caller retrying with the same instances
// would store them again.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active, which
// makes a deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) LoadRepository() ports.LoadRepository {
	return loadrepo.NewGormLoadRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) BidRepository() ports.BidRepository {
	return bidrepo.NewGormBidRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) InteractionRepository() ports.InteractionRepository {
	return interactionrepo.NewGormInteractionRepository(uow.conn())
}

func (uow *GormUnitOfWork) RatingRepository() ports.RatingRepository {
	return ratingrepo.NewGormRatingRepository(uow.conn())
}

func (uow *GormUnitOfWork) CarrierRepository() ports.CarrierRepository {
	return carrierrepo.NewGormCarrierRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ShipperRepository() ports.ShipperRepository {
	return shipperrepo.NewGormShipperRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved within this unit of work so
// Commit can collect its events. Repositories call it after a successful
// write; tracking the same instance twice is a no-op.
func (uow *GormUnitOfWork) TrackAggregate(aggregate kernel.AggregateRoot) {
	if slices.Contains(uow.trackedAggregates, aggregate) {
		return
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

// conn is the transaction when one is active and the plain connection otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
