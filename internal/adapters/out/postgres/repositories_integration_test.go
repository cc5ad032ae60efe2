package postgres_test

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func (s *PostgresIntegrationTestSuite) TestLoadRepository_RoundTrip() {
	ctx := context.Background()
	l := s.newLoad(kernel.NewUUID(), 48*time.Hour)
	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.LoadRepository().Add(ctx, l)
	})

	stored, err := s.reader.LoadRepository().Get(ctx, l.ID())
	s.Require().NoError(err)

	s.True(stored.IsEqual(l))
	s.Equal("Cement", stored.Material())
	s.Equal("Pune", stored.Pickup().City())
	s.Equal("Delhi", stored.Delivery().City())
	s.True(stored.Requirement().Value().Equal(decimal.NewFromInt(10)))
	s.True(stored.RequiredTypes().Contains(kernel.OpenBody))
	s.True(stored.Budget().Amount().Equal(decimal.NewFromInt(50000)))
	s.True(stored.Schedule().BiddingDeadline().Equal(t0.Add(48 * time.Hour)))
	s.Nil(stored.SelectedCarrier())
	s.Equal(load.Created, stored.Status())
}

func (s *PostgresIntegrationTestSuite) TestLoadRepository_UpdateAssignment() {
	ctx := context.Background()
	l := s.newLoad(kernel.NewUUID(), time.Hour)
	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.LoadRepository().Add(ctx, l)
	})

	carrierID, vehicleID := kernel.NewUUID(), kernel.NewUUID()
	s.inTx(func(uow ports.UnitOfWork) error {
		locked, err := uow.LoadRepository().GetForUpdate(ctx, l.ID())
		if err != nil {
			return err
		}
		if err := locked.Assign(carrierID, vehicleID, t0.Add(2*time.Hour)); err != nil {
			return err
		}
		return uow.LoadRepository().Update(ctx, locked)
	})

	stored, err := s.reader.LoadRepository().Get(ctx, l.ID())
	s.Require().NoError(err)
	s.Equal(load.Assigned, stored.Status())
	s.Require().NotNil(stored.SelectedCarrier())
	s.True(stored.SelectedCarrier().IsEqual(carrierID))
	s.True(stored.AssignedVehicle().IsEqual(vehicleID))
}

func (s *PostgresIntegrationTestSuite) TestLoadRepository_MissingRows() {
	ctx := context.Background()
	l := s.newLoad(kernel.NewUUID(), time.Hour)

	_, err := s.reader.LoadRepository().Get(ctx, l.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	s.Require().ErrorIs(uow.LoadRepository().Update(ctx, l), errs.ErrObjectNotFound)
}

// TestLoadRepository_ListOpenForBidding verifies the feed drops expired loads
// and loads the carrier already answered, earliest deadline first.
func (s *PostgresIntegrationTestSuite) TestLoadRepository_ListOpenForBidding() {
	ctx := context.Background()
	shipperID, carrierID := kernel.NewUUID(), kernel.NewUUID()
	later := s.newLoad(shipperID, 72*time.Hour)
	sooner := s.newLoad(shipperID, 24*time.Hour)
	expired := s.newLoad(shipperID, time.Hour)
	declined := s.newLoad(shipperID, 48*time.Hour)
	notInterested, err := interaction.NewInteraction(kernel.NewUUID(), carrierID, declined.ID(), interaction.NotInterested, t0)
	s.Require().NoError(err)

	s.inTx(func(uow ports.UnitOfWork) error {
		for _, l := range []*load.Load{later, sooner, expired, declined} {
			if err := uow.LoadRepository().Add(ctx, l); err != nil {
				return err
			}
		}
		return uow.InteractionRepository().Add(ctx, notInterested)
	})

	feed, err := s.reader.LoadRepository().ListOpenForBidding(ctx, carrierID, t0.Add(2*time.Hour))
	s.Require().NoError(err)
	s.Require().Len(feed, 2)
	s.True(feed[0].IsEqual(sooner))
	s.True(feed[1].IsEqual(later))

	other, err := s.reader.LoadRepository().ListOpenForBidding(ctx, kernel.NewUUID(), t0.Add(2*time.Hour))
	s.Require().NoError(err)
	s.Len(other, 3)
}

func (s *PostgresIntegrationTestSuite) TestVehicleRepository_NumberIsUnique() {
	ctx := context.Background()
	carrierID := kernel.NewUUID()
	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.VehicleRepository().Add(ctx, s.newVehicle(carrierID, "MH12AB1234"))
	})

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.VehicleRepository().Add(ctx, s.newVehicle(kernel.NewUUID(), "MH12AB1234"))
	s.Require().ErrorIs(err, errs.ErrConflict)
	var conflict *errs.ConflictError
	s.Require().True(errors.As(err, &conflict))
	s.Equal("vehicleNumber", conflict.ParamName)
}

func (s *PostgresIntegrationTestSuite) TestVehicleRepository_RoundTripAndListing() {
	ctx := context.Background()
	carrierID := kernel.NewUUID()
	first := s.newVehicle(carrierID, "MH12AB1234")
	second := s.newVehicle(carrierID, "MH14CD5678")
	s.Require().NoError(second.EnterMaintenance())
	foreign := s.newVehicle(kernel.NewUUID(), "KA01EF9012")

	s.inTx(func(uow ports.UnitOfWork) error {
		for _, v := range []*vehicle.Vehicle{first, second, foreign} {
			if err := uow.VehicleRepository().Add(ctx, v); err != nil {
				return err
			}
		}
		return nil
	})

	stored, err := s.reader.VehicleRepository().Get(ctx, first.ID())
	s.Require().NoError(err)
	s.Equal("MH12AB1234", stored.Number().String())
	s.Equal(kernel.OpenBody, stored.Type())
	s.Equal(kernel.Tons, stored.Capacity().Unit())
	s.True(stored.Capacity().Value().Equal(decimal.NewFromInt(12)))
	s.InDelta(22.0, stored.Dimensions().LengthFt, 0.001)
	s.Equal(2022, stored.ManufacturingYear())

	fleet, err := s.reader.VehicleRepository().ListByCarrier(ctx, carrierID)
	s.Require().NoError(err)
	s.Len(fleet, 2)

	available, err := s.reader.VehicleRepository().ListAvailableByCarrier(ctx, carrierID)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.True(available[0].IsEqual(first))
}

func (s *PostgresIntegrationTestSuite) TestVehicleRepository_HistoryAndDelete() {
	ctx := context.Background()
	carrierID := kernel.NewUUID()
	bidded := s.newVehicle(carrierID, "MH12AB1234")
	idle := s.newVehicle(carrierID, "MH14CD5678")
	l := s.newLoad(kernel.NewUUID(), time.Hour)
	s.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.LoadRepository().Add(ctx, l); err != nil {
			return err
		}
		if err := uow.VehicleRepository().Add(ctx, bidded); err != nil {
			return err
		}
		return uow.VehicleRepository().Add(ctx, idle)
	})
	s.placeBid(l, bidded, 42000)

	hasHistory, err := s.reader.VehicleRepository().HasHistory(ctx, bidded.ID())
	s.Require().NoError(err)
	s.True(hasHistory)

	hasHistory, err = s.reader.VehicleRepository().HasHistory(ctx, idle.ID())
	s.Require().NoError(err)
	s.False(hasHistory)

	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.VehicleRepository().Delete(ctx, idle.ID())
	})
	_, err = s.reader.VehicleRepository().Get(ctx, idle.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	stored, err := s.reader.VehicleRepository().Get(ctx, bidded.ID())
	s.Require().NoError(err)
	s.Equal(vehicle.Bidded, stored.Status())
}

func (s *PostgresIntegrationTestSuite) TestVehicleRepository_GetManyForUpdate() {
	ctx := context.Background()
	carrierID := kernel.NewUUID()
	a := s.newVehicle(carrierID, "MH12AB1234")
	b := s.newVehicle(carrierID, "MH14CD5678")
	s.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.VehicleRepository().Add(ctx, a); err != nil {
			return err
		}
		return uow.VehicleRepository().Add(ctx, b)
	})

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	locked, err := uow.VehicleRepository().GetManyForUpdate(ctx, []kernel.UUID{b.ID(), a.ID(), b.ID()})
	s.Require().NoError(err)
	s.Len(locked, 2)

	missing := kernel.NewUUID()
	_, err = uow.VehicleRepository().GetManyForUpdate(ctx, []kernel.UUID{a.ID(), missing})
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Contains(err.Error(), missing.String())
}

func (s *PostgresIntegrationTestSuite) TestBidRepository_PendingByLoad() {
	ctx := context.Background()
	l := s.newLoad(kernel.NewUUID(), time.Hour)
	v1 := s.newVehicle(kernel.NewUUID(), "MH12AB1234")
	v2 := s.newVehicle(kernel.NewUUID(), "MH14CD5678")
	s.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.LoadRepository().Add(ctx, l); err != nil {
			return err
		}
		if err := uow.VehicleRepository().Add(ctx, v1); err != nil {
			return err
		}
		return uow.VehicleRepository().Add(ctx, v2)
	})
	winner := s.placeBid(l, v1, 40000)
	loser := s.placeBid(l, v2, 45000)

	s.inTx(func(uow ports.UnitOfWork) error {
		pending, err := uow.BidRepository().ListPendingByLoadForUpdate(ctx, l.ID())
		if err != nil {
			return err
		}
		s.Len(pending, 2)
		for _, b := range pending {
			if b.ID().IsEqual(winner.ID()) {
				err = b.Accept(t0.Add(2 * time.Hour))
			} else {
				err = b.Reject(t0.Add(2 * time.Hour))
			}
			if err != nil {
				return err
			}
			if err := uow.BidRepository().Update(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})

	stored, err := s.reader.BidRepository().Get(ctx, loser.ID())
	s.Require().NoError(err)
	s.Equal(bid.Rejected, stored.Status())
	s.True(stored.Amount().Amount().Equal(decimal.NewFromInt(45000)))
	s.Equal(30, stored.EstimatedHours())

	s.inTx(func(uow ports.UnitOfWork) error {
		pending, err := uow.BidRepository().ListPendingByLoadForUpdate(ctx, l.ID())
		s.Empty(pending)
		return err
	})
}

func (s *PostgresIntegrationTestSuite) TestInteractionRepository_OnePerCarrierAndLoad() {
	ctx := context.Background()
	carrierID, loadID := kernel.NewUUID(), kernel.NewUUID()
	first, err := interaction.NewInteraction(kernel.NewUUID(), carrierID, loadID, interaction.NotInterested, t0)
	s.Require().NoError(err)
	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.InteractionRepository().Add(ctx, first)
	})

	stored, err := s.reader.InteractionRepository().Get(ctx, carrierID, loadID)
	s.Require().NoError(err)
	s.Equal(interaction.NotInterested, stored.Kind())

	again, err := interaction.NewInteraction(kernel.NewUUID(), carrierID, loadID, interaction.Bidded, t0)
	s.Require().NoError(err)
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	s.Require().ErrorIs(uow.InteractionRepository().Add(ctx, again), errs.ErrConflict)

	_, err = s.reader.InteractionRepository().Get(ctx, carrierID, kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PostgresIntegrationTestSuite) TestCarrierRepository_ProfileConflicts() {
	ctx := context.Background()
	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.CarrierRepository().Add(ctx,
			s.newCarrier("Sahyadri Roadways", "desk@sahyadri.in", "9123456780", "27AAPFU0939F1ZV"))
	})

	cases := map[string]struct {
		email, number, gst string
	}{
		"contactEmail":  {"desk@sahyadri.in", "9000000001", "29AAGCS1234K1Z5"},
		"contactNumber": {"fleet@konkan.in", "9123456780", "29AAGCS1234K1Z5"},
		"gstNumber":     {"fleet@konkan.in", "9000000001", "27AAPFU0939F1ZV"},
	}
	for field, tc := range cases {
		uow := s.factory.Create()
		s.Require().NoError(uow.Begin(ctx))
		err := uow.CarrierRepository().Add(ctx, s.newCarrier("Konkan Carriers", tc.email, tc.number, tc.gst))
		_ = uow.Rollback(ctx)

		var conflict *errs.ConflictError
		s.Require().True(errors.As(err, &conflict), field)
		s.Equal(field, conflict.ParamName)
	}
}

// TestCarrierRepository_RatingIsStoredOncePerLoad verifies the running
// rating totals and the one-rating-per-load key.
func (s *PostgresIntegrationTestSuite) TestCarrierRepository_RatingIsStoredOncePerLoad() {
	ctx := context.Background()
	c := s.newCarrier("Sahyadri Roadways", "desk@sahyadri.in", "9123456780", "27AAPFU0939F1ZV")
	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.CarrierRepository().Add(ctx, c)
	})

	loadID, shipperID := kernel.NewUUID(), kernel.NewUUID()
	s.inTx(func(uow ports.UnitOfWork) error {
		locked, err := uow.CarrierRepository().GetForUpdate(ctx, c.ID())
		if err != nil {
			return err
		}
		locked.RecordTrip()
		rating, err := locked.Rate(kernel.NewUUID(), loadID, shipperID, 4, t0)
		if err != nil {
			return err
		}
		if err := uow.RatingRepository().Add(ctx, rating); err != nil {
			return err
		}
		return uow.CarrierRepository().Update(ctx, locked)
	})

	stored, err := s.reader.CarrierRepository().Get(ctx, c.ID())
	s.Require().NoError(err)
	s.Equal(4, stored.RatingTotal())
	s.Equal(1, stored.RatingCount())
	s.Equal(1, stored.TotalTrips())
	s.Equal("desk@sahyadri.in", stored.Profile().Email())

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	rated, err := uow.RatingRepository().ExistsForLoad(ctx, loadID)
	s.Require().NoError(err)
	s.True(rated)

	again, err := stored.Rate(kernel.NewUUID(), loadID, shipperID, 5, t0)
	s.Require().NoError(err)
	s.Require().ErrorIs(uow.RatingRepository().Add(ctx, again), errs.ErrConflict)
}

func (s *PostgresIntegrationTestSuite) TestShipperRepository_RoundTrip() {
	ctx := context.Background()
	sh := s.newShipper()
	s.inTx(func(uow ports.UnitOfWork) error {
		return uow.ShipperRepository().Add(ctx, sh)
	})

	stored, err := s.reader.ShipperRepository().Get(ctx, sh.ID())
	s.Require().NoError(err)
	s.Equal("Deccan Foods", stored.Profile().CompanyName())
	s.Equal(sh.IndustryType(), stored.IndustryType())
	s.Equal("411001", stored.Profile().Address().Pincode())

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	s.Require().ErrorIs(uow.ShipperRepository().Add(ctx, s.newShipper()), errs.ErrConflict)
}
