// Package commands contains the marketplace operations that change state.
// Every command follows the same pattern: a constructor that validates input,
// a handler that opens a unit of work, re-reads and locks what it needs, lets
// the domain decide, saves the changed aggregates and commits. Any failure
// rolls the whole operation back.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of work interfaces narrowed to what command handlers use.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	BidRepoFactory interface {
		BidRepository() ports.BidRepository
	}

	InteractionRepoFactory interface {
		InteractionRepository() ports.InteractionRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	ShipperRepoFactory interface {
		ShipperRepository() ports.ShipperRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// UoW spans every marketplace aggregate. Used by all commands that
	// change loads, bids, vehicles or parties.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   l, err := uow.LoadRepository().GetForUpdate(ctx, loadID)
	//   pending, err := uow.BidRepository().ListPendingByLoadForUpdate(ctx, loadID)
	//   // ... decide and save
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LoadRepoFactory
		VehicleRepoFactory
		BidRepoFactory
		InteractionRepoFactory
		RatingRepoFactory
		CarrierRepoFactory
		ShipperRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// OutboxUoW is used by the relay, which only reads and acknowledges stored events.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
