package postgres_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"

	"github.com/shopspring/decimal"
)

type marketplaceFixture struct {
	shipperID kernel.UUID
	open      *load.Load
	quiet     *load.Load
	carriers  map[string]*carrier.Carrier
}

// seedMarketplace stores a shipper with two loads and three rated carriers
// bidding on the first one:
//
//	Sahyadri  40000  rated 5
//	Konkan    40000  rated 3
//	Malwa     38000  unrated
func (s *PostgresIntegrationTestSuite) seedMarketplace() marketplaceFixture {
	ctx := context.Background()
	sh := s.newShipper()
	open := s.newLoad(sh.ID(), time.Hour)
	quiet := s.newLoad(sh.ID(), 48*time.Hour)

	carriers := map[string]*carrier.Carrier{
		"Sahyadri": s.newCarrier("Sahyadri Roadways", "desk@sahyadri.in", "9123456780", "27AAPFU0939F1ZV"),
		"Konkan":   s.newCarrier("Konkan Carriers", "fleet@konkan.in", "9000000001", "29AAGCS1234K1Z5"),
		"Malwa":    s.newCarrier("Malwa Logistics", "ops@malwa.in", "9000000002", "23AABCM5678L1Z2"),
	}
	for name, score := range map[string]int{"Sahyadri": 5, "Konkan": 3} {
		_, err := carriers[name].Rate(kernel.NewUUID(), kernel.NewUUID(), sh.ID(), score, t0)
		s.Require().NoError(err)
	}

	s.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.ShipperRepository().Add(ctx, sh); err != nil {
			return err
		}
		if err := uow.LoadRepository().Add(ctx, open); err != nil {
			return err
		}
		if err := uow.LoadRepository().Add(ctx, quiet); err != nil {
			return err
		}
		for _, c := range carriers {
			if err := uow.CarrierRepository().Add(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})

	numbers := map[string]string{"Sahyadri": "MH12AB1234", "Konkan": "MH14CD5678", "Malwa": "MP09GH3456"}
	amounts := map[string]int64{"Sahyadri": 40000, "Konkan": 40000, "Malwa": 38000}
	for name, c := range carriers {
		v := s.newVehicle(c.ID(), numbers[name])
		s.inTx(func(uow ports.UnitOfWork) error {
			return uow.VehicleRepository().Add(ctx, v)
		})
		s.placeBid(open, v, amounts[name])
	}

	return marketplaceFixture{shipperID: sh.ID(), open: open, quiet: quiet, carriers: carriers}
}

// TestBidsForLoadQuery_Ranking verifies the lowest bid comes first and ties
// go to the better rated carrier.
func (s *PostgresIntegrationTestSuite) TestBidsForLoadQuery_Ranking() {
	ctx := context.Background()
	f := s.seedMarketplace()
	handler := queries.NewBidsForLoadQueryHandler(s.reader, s.db)

	query, err := queries.NewBidsForLoadQuery(f.shipperID, f.open.ID())
	s.Require().NoError(err)
	bids, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Require().Len(bids, 3)

	s.Equal("Malwa Logistics", bids[0].CarrierCompany)
	s.Equal("Sahyadri Roadways", bids[1].CarrierCompany)
	s.Equal("Konkan Carriers", bids[2].CarrierCompany)

	s.True(bids[0].CarrierRating.Equal(decimal.Zero))
	s.True(bids[1].CarrierRating.Equal(decimal.NewFromInt(5)))
	s.Equal(1, bids[1].CarrierRatingCount)
	s.Equal("MH12AB1234", bids[1].VehicleNumber)
	s.Equal(kernel.OpenBody.String(), bids[1].VehicleType)
	s.True(bids[1].BidAmount.Equal(decimal.NewFromInt(40000)))
	s.Equal(30, bids[1].EstimatedTransitTimeHours)

	empty, err := queries.NewBidsForLoadQuery(f.shipperID, f.quiet.ID())
	s.Require().NoError(err)
	none, err := handler.Handle(ctx, empty)
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *PostgresIntegrationTestSuite) TestListShipperLoadsQuery() {
	ctx := context.Background()
	f := s.seedMarketplace()
	handler := queries.NewListShipperLoadsQueryHandler(s.db)

	query, err := queries.NewListShipperLoadsQuery(f.shipperID, "")
	s.Require().NoError(err)
	loads, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Require().Len(loads, 2)

	counts := make(map[kernel.UUID]int)
	for _, row := range loads {
		counts[row.ID] = row.BidCount
		s.Equal("CREATED", row.Status)
		s.Equal("Pune", row.PickupCity)
		s.False(row.IsRated)
	}
	s.Equal(3, counts[f.open.ID()])
	s.Equal(0, counts[f.quiet.ID()])

	assigned, err := queries.NewListShipperLoadsQuery(f.shipperID, "assigned")
	s.Require().NoError(err)
	loads, err = handler.Handle(ctx, assigned)
	s.Require().NoError(err)
	s.Empty(loads)

	other, err := queries.NewListShipperLoadsQuery(kernel.NewUUID(), "")
	s.Require().NoError(err)
	loads, err = handler.Handle(ctx, other)
	s.Require().NoError(err)
	s.Empty(loads)
}

func (s *PostgresIntegrationTestSuite) TestListCarrierBidsQuery() {
	ctx := context.Background()
	f := s.seedMarketplace()
	handler := queries.NewListCarrierBidsQueryHandler(s.db)
	carrierID := f.carriers["Konkan"].ID()

	query, err := queries.NewListCarrierBidsQuery(carrierID, "PENDING")
	s.Require().NoError(err)
	bids, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Require().Len(bids, 1)
	s.True(bids[0].LoadID.IsEqual(f.open.ID()))
	s.Equal("Deccan Foods", bids[0].ShipperCompany)
	s.Equal("Cement", bids[0].Material)
	s.Equal("Delhi", bids[0].DeliveryCity)
	s.Equal("MH14CD5678", bids[0].VehicleNumber)
	s.Equal("CREATED", bids[0].LoadStatus)

	accepted, err := queries.NewListCarrierBidsQuery(carrierID, "ACCEPTED")
	s.Require().NoError(err)
	bids, err = handler.Handle(ctx, accepted)
	s.Require().NoError(err)
	s.Empty(bids)
}

func (s *PostgresIntegrationTestSuite) TestLoadsByStatusQuery() {
	ctx := context.Background()
	f := s.seedMarketplace()

	s.inTx(func(uow ports.UnitOfWork) error {
		l, err := uow.LoadRepository().GetForUpdate(ctx, f.open.ID())
		if err != nil {
			return err
		}
		if err := l.Assign(f.carriers["Malwa"].ID(), kernel.NewUUID(), t0.Add(2*time.Hour)); err != nil {
			return err
		}
		return uow.LoadRepository().Update(ctx, l)
	})

	counts, err := queries.NewLoadsByStatusQueryHandler(s.db).Handle(ctx, queries.NewLoadsByStatusQuery())
	s.Require().NoError(err)
	s.Equal(map[load.Status]int{
		load.Created:   1,
		load.Assigned:  1,
		load.InTransit: 0,
		load.Delivered: 0,
	}, counts)
}
