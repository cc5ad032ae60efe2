package postgres_test

import (
	"context"
	"sync"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"
	"freight/internal/pkg/clock"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// commandUoWs hands the Gorm units of work to command handlers.
type commandUoWs struct {
	factory ports.UnitOfWorkFactory
}

func (f commandUoWs) Create() commands.UoW {
	return f.factory.Create()
}

// runTogether starts every fn at once and returns their errors in order.
func runTogether(fns ...func() error) []error {
	results := make([]error, len(fns))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = fn()
		}()
	}
	close(start)
	wg.Wait()
	return results
}

// TestAcceptBid_ConcurrentAccepts has two requests accept different bids on
// the same load. The load row lock lets exactly one of them win.
func (s *PostgresIntegrationTestSuite) TestAcceptBid_ConcurrentAccepts() {
	ctx := context.Background()
	sh := s.newShipper()
	l := s.newLoad(sh.ID(), time.Hour)
	v1 := s.newVehicle(kernel.NewUUID(), "MH12AB1234")
	v2 := s.newVehicle(kernel.NewUUID(), "MH14CD5678")
	s.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.ShipperRepository().Add(ctx, sh); err != nil {
			return err
		}
		if err := uow.LoadRepository().Add(ctx, l); err != nil {
			return err
		}
		if err := uow.VehicleRepository().Add(ctx, v1); err != nil {
			return err
		}
		return uow.VehicleRepository().Add(ctx, v2)
	})
	bids := []*bid.Bid{s.placeBid(l, v1, 40000), s.placeBid(l, v2, 42000)}

	handler := commands.NewAcceptBidCommandHandler(commandUoWs{s.factory}, clock.Fixed{At: t0.Add(2 * time.Hour)})
	accept := func(b *bid.Bid) func() error {
		return func() error {
			cmd, err := commands.NewAcceptBidCommand(sh.ID(), b.ID())
			if err != nil {
				return err
			}
			return handler.Handle(ctx, cmd)
		}
	}

	results := runTogether(accept(bids[0]), accept(bids[1]))

	var committed int
	for _, err := range results {
		if err == nil {
			committed++
			continue
		}
		s.Require().ErrorIs(err, errs.ErrInvalidState)
	}
	s.Equal(1, committed)

	accepted := 0
	for _, b := range bids {
		stored, err := s.reader.BidRepository().Get(ctx, b.ID())
		s.Require().NoError(err)
		if stored.Status() == bid.Accepted {
			accepted++
		} else {
			s.Equal(bid.Rejected, stored.Status())
		}
	}
	s.Equal(1, accepted)

	booked := 0
	for _, v := range []*vehicle.Vehicle{v1, v2} {
		stored, err := s.reader.VehicleRepository().Get(ctx, v.ID())
		s.Require().NoError(err)
		if stored.Status() == vehicle.Booked {
			booked++
		} else {
			s.Equal(vehicle.Available, stored.Status())
		}
	}
	s.Equal(1, booked)

	assigned, err := s.reader.LoadRepository().Get(ctx, l.ID())
	s.Require().NoError(err)
	s.Equal(load.Assigned, assigned.Status())
}

// TestPlaceBid_ConcurrentBidsWithOneVehicle has a carrier offer the same
// vehicle on two loads at once. The vehicle row lock lets only one bid in.
func (s *PostgresIntegrationTestSuite) TestPlaceBid_ConcurrentBidsWithOneVehicle() {
	ctx := context.Background()
	sh := s.newShipper()
	loads := []*load.Load{s.newLoad(sh.ID(), time.Hour), s.newLoad(sh.ID(), time.Hour)}
	carrierID := kernel.NewUUID()
	v := s.newVehicle(carrierID, "MH12AB1234")
	s.inTx(func(uow ports.UnitOfWork) error {
		for _, l := range loads {
			if err := uow.LoadRepository().Add(ctx, l); err != nil {
				return err
			}
		}
		return uow.VehicleRepository().Add(ctx, v)
	})

	handler := commands.NewPlaceBidCommandHandler(commandUoWs{s.factory}, clock.Fixed{At: t0.Add(10 * time.Minute)})
	place := func(l *load.Load) func() error {
		return func() error {
			cmd, err := commands.NewPlaceBidCommand(
				kernel.NewUUID(), carrierID, l.ID(), v.ID(), decimal.NewFromInt(40000), 30)
			if err != nil {
				return err
			}
			return handler.Handle(ctx, cmd)
		}
	}

	results := runTogether(place(loads[0]), place(loads[1]))

	s.Equal(1, countNil(results))
	for _, err := range results {
		if err != nil {
			s.Require().ErrorIs(err, errs.ErrInvalidState)
			s.Contains(err.Error(), "vehicle is not available")
		}
	}

	var stored int64
	err := s.db.Raw("SELECT count(*) FROM bids WHERE vehicle_id = ?", v.ID().String()).Scan(&stored).Error
	s.Require().NoError(err)
	s.EqualValues(1, stored)

	reloaded, err := s.reader.VehicleRepository().Get(ctx, v.ID())
	s.Require().NoError(err)
	s.Equal(vehicle.Bidded, reloaded.Status())
}

func countNil(results []error) int {
	n := 0
	for _, err := range results {
		if err == nil {
			n++
		}
	}
	return n
}
