package postgres_test

import (
	"context"
	"time"

	"freight/internal/adapters/out/postgres/outboxrepo"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/shipper"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// TestUnitOfWorkFactory_Create verifies the factory hands out isolated instances.
func (s *PostgresIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := s.factory.Create()
	uow2 := s.factory.Create()

	s.NotSame(uow1, uow2, "Factory should create separate instances")
	s.NotNil(uow1.LoadRepository())
	s.NotNil(uow1.VehicleRepository())
	s.NotNil(uow1.BidRepository())
	s.NotNil(uow1.InteractionRepository())
	s.NotNil(uow1.RatingRepository())
	s.NotNil(uow1.CarrierRepository())
	s.NotNil(uow1.ShipperRepository())
	s.NotNil(uow1.OutboxRepository())
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	s.Require().NoError(uow.Commit(ctx))

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Rollback(ctx))
}

func (s *PostgresIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	s.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommitStoresEvents verifies the saved aggregates and their
// events land together and the events are cleared from the aggregates.
func (s *PostgresIntegrationTestSuite) TestUnitOfWork_CommitStoresEvents() {
	ctx := context.Background()
	sh := s.newShipper()
	l := s.newLoad(sh.ID(), 48*time.Hour)

	s.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.ShipperRepository().Add(ctx, sh); err != nil {
			return err
		}
		return uow.LoadRepository().Add(ctx, l)
	})

	s.Empty(sh.DomainEvents())
	s.Empty(l.DomainEvents())
	s.ElementsMatch([]string{shipper.EventShipperRegistered, load.EventLoadCreated}, s.outboxNames())

	stored, err := s.reader.LoadRepository().Get(ctx, l.ID())
	s.Require().NoError(err)
	s.Equal(load.Created, stored.Status())
}

// TestUnitOfWork_TrackAggregateOnce verifies an aggregate saved twice in one
// transaction contributes its events once.
func (s *PostgresIntegrationTestSuite) TestUnitOfWork_TrackAggregateOnce() {
	ctx := context.Background()
	c := s.newCarrier("Sahyadri Roadways", "desk@sahyadri.in", "9123456780", "27AAPFU0939F1ZV")

	s.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.CarrierRepository().Add(ctx, c); err != nil {
			return err
		}
		c.IncrementFleet()
		return uow.CarrierRepository().Update(ctx, c)
	})

	s.Equal([]string{carrier.EventCarrierRegistered}, s.outboxNames())
}

// TestUnitOfWork_RollbackDiscardsEverything verifies neither rows nor events
// survive a rollback.
func (s *PostgresIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	sh := s.newShipper()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.ShipperRepository().Add(ctx, sh))
	s.Require().NoError(uow.Rollback(ctx))

	_, err := s.reader.ShipperRepository().Get(ctx, sh.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Empty(s.outboxNames())
	s.NotEmpty(sh.DomainEvents(), "events stay on the aggregate after rollback")
}

// TestUnitOfWork_FailedWriteLeavesNoTrace verifies a handler that aborts on
// a conflict keeps the earlier writes of the same transaction out.
func (s *PostgresIntegrationTestSuite) TestUnitOfWork_FailedWriteLeavesNoTrace() {
	ctx := context.Background()
	c := s.newCarrier("Sahyadri Roadways", "desk@sahyadri.in", "9123456780", "27AAPFU0939F1ZV")
	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.CarrierRepository().Add(ctx, c)
	})
	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.VehicleRepository().Add(ctx, s.newVehicle(c.ID(), "MH12AB1234"))
	})

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	second := s.newVehicle(c.ID(), "MH14CD5678")
	s.Require().NoError(uow.VehicleRepository().Add(ctx, second))
	err := uow.VehicleRepository().Add(ctx, s.newVehicle(c.ID(), "MH12AB1234"))
	s.Require().ErrorIs(err, errs.ErrConflict)
	s.Require().NoError(uow.Rollback(ctx))

	_, err = s.reader.VehicleRepository().Get(ctx, second.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestOutbox_RelayCycle verifies unpublished messages are listed oldest first
// and drop out of the feed once marked published.
func (s *PostgresIntegrationTestSuite) TestOutbox_RelayCycle() {
	ctx := context.Background()
	sh := s.newShipper()
	l := s.newLoad(sh.ID(), 48*time.Hour)
	s.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.ShipperRepository().Add(ctx, sh); err != nil {
			return err
		}
		return uow.LoadRepository().Add(ctx, l)
	})

	var published []ports.OutboxMessage
	s.inTx(func(uow ports.UnitOfWork) error {
		messages, err := uow.OutboxRepository().ListUnpublished(ctx, 1)
		if err != nil {
			return err
		}
		published = messages
		return uow.OutboxRepository().MarkPublished(ctx, []kernel.UUID{messages[0].ID}, t0)
	})
	s.Require().Len(published, 1)
	s.Contains(string(published[0].Payload), `"eventName"`)

	remaining, err := outboxrepo.NewGormOutboxRepository(s.db).ListUnpublished(ctx, 10)
	s.Require().NoError(err)
	s.Len(remaining, 1)
	s.NotEqual(published[0].ID, remaining[0].ID)
}
