package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testNow       = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	afterDeadline = testNow.Add(90 * time.Minute)
	afterPickup   = testNow.Add(150 * time.Minute)
)

func newLoad(t *testing.T, types []kernel.VehicleType, tons, litres int64) *load.Load {
	t.Helper()
	pickup, err := kernel.NewAddress("pickup", "12 MG Road", "Pune", "MH", "411001")
	require.NoError(t, err)
	delivery, err := kernel.NewAddress("delivery", "5 Ring Road", "Delhi", "DL", "110001")
	require.NoError(t, err)

	l, err := load.NewLoad(kernel.NewUUID(), load.Draft{
		ShipperID:            kernel.NewUUID(),
		Pickup:               pickup,
		Delivery:             delivery,
		Material:             "Cement",
		WeightTons:           decimal.NewFromInt(tons),
		VolumeLitres:         decimal.NewFromInt(litres),
		RequiredTypes:        types,
		BudgetPrice:          decimal.NewFromInt(1000),
		BiddingDeadline:      testNow.Add(time.Hour),
		PickupDate:           testNow.Add(2 * time.Hour),
		ExpectedDeliveryDate: testNow.Add(3 * time.Hour),
	}, testNow)
	require.NoError(t, err)
	return l
}

func newVehicle(t *testing.T, carrierID kernel.UUID, vt kernel.VehicleType, capacity int64) *vehicle.Vehicle {
	t.Helper()
	spec := vehicle.Spec{
		Number:            "MH12AB1234",
		Type:              vt,
		Dimensions:        vehicle.Dimensions{LengthFt: 20, WidthFt: 8, HeightFt: 7},
		ManufacturingYear: 2022,
	}
	if vt == kernel.Tanker {
		spec.CapacityLitres = decimal.NewFromInt(capacity)
	} else {
		spec.CapacityTons = decimal.NewFromInt(capacity)
	}
	v, err := vehicle.NewVehicle(kernel.NewUUID(), carrierID, spec, testNow)
	require.NoError(t, err)
	return v
}

// placeBid reserves a fresh vehicle and bids with it, the way PlaceBid does.
func placeBid(t *testing.T, l *load.Load, amount int64) (*bid.Bid, *vehicle.Vehicle) {
	t.Helper()
	carrierID := kernel.NewUUID()
	v := newVehicle(t, carrierID, kernel.OpenBody, 20)
	require.NoError(t, v.MarkBidded())
	b, err := bid.NewBid(kernel.NewUUID(), l.ID(), carrierID, v.ID(), decimal.NewFromInt(amount), 10, testNow)
	require.NoError(t, err)
	return b, v
}
