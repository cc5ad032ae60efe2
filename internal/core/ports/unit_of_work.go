package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one marketplace operation.
// Repositories obtained from it after Begin share its transaction; before
// Begin they read outside any transaction.
//
// Commit also stores the domain events of every aggregate the repositories
// saved, so a change and its events are persisted together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit writes pending events to the outbox and commits.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	LoadRepository() LoadRepository
	VehicleRepository() VehicleRepository
	BidRepository() BidRepository
	InteractionRepository() InteractionRepository
	RatingRepository() RatingRepository
	CarrierRepository() CarrierRepository
	ShipperRepository() ShipperRepository
	OutboxRepository() OutboxRepository
}
