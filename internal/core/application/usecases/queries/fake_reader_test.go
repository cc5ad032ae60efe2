package queries_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/shipper"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

// fakeReader keeps aggregates in maps. Embedded interfaces are nil, so a
// handler calling a write method panics the test.
type fakeReader struct {
	loads        map[kernel.UUID]*load.Load
	vehicles     map[kernel.UUID]*vehicle.Vehicle
	bids         map[kernel.UUID]*bid.Bid
	interactions map[[2]kernel.UUID]*interaction.Interaction
	carriers     map[kernel.UUID]*carrier.Carrier
	shippers     map[kernel.UUID]*shipper.Shipper
}

var _ queries.Reader = (*fakeReader)(nil)

func newFakeReader() *fakeReader {
	return &fakeReader{
		loads:        make(map[kernel.UUID]*load.Load),
		vehicles:     make(map[kernel.UUID]*vehicle.Vehicle),
		bids:         make(map[kernel.UUID]*bid.Bid),
		interactions: make(map[[2]kernel.UUID]*interaction.Interaction),
		carriers:     make(map[kernel.UUID]*carrier.Carrier),
		shippers:     make(map[kernel.UUID]*shipper.Shipper),
	}
}

func (r *fakeReader) LoadRepository() ports.LoadRepository       { return fakeLoads{r: r} }
func (r *fakeReader) VehicleRepository() ports.VehicleRepository { return fakeVehicles{r: r} }
func (r *fakeReader) BidRepository() ports.BidRepository         { return fakeBids{r: r} }
func (r *fakeReader) InteractionRepository() ports.InteractionRepository {
	return fakeInteractions{r: r}
}
func (r *fakeReader) CarrierRepository() ports.CarrierRepository { return fakeCarriers{r: r} }
func (r *fakeReader) ShipperRepository() ports.ShipperRepository { return fakeShippers{r: r} }

type fakeLoads struct {
	ports.LoadRepository
	r *fakeReader
}

func (f fakeLoads) Get(_ context.Context, id kernel.UUID) (*load.Load, error) {
	if l, ok := f.r.loads[id]; ok {
		return l, nil
	}
	return nil, errs.NewObjectNotFoundError("load", id)
}

func (f fakeLoads) ListOpenForBidding(_ context.Context, carrierID kernel.UUID, now time.Time) ([]*load.Load, error) {
	var open []*load.Load
	for _, l := range f.r.loads {
		if _, seen := f.r.interactions[[2]kernel.UUID{carrierID, l.ID()}]; seen {
			continue
		}
		if l.CheckOpenForBidding(now) == nil {
			open = append(open, l)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		return open[i].Schedule().BiddingDeadline().Before(open[j].Schedule().BiddingDeadline())
	})
	return open, nil
}

type fakeVehicles struct {
	ports.VehicleRepository
	r *fakeReader
}

func (f fakeVehicles) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if v, ok := f.r.vehicles[id]; ok {
		return v, nil
	}
	return nil, errs.NewObjectNotFoundError("vehicle", id)
}

func (f fakeVehicles) ListByCarrier(_ context.Context, carrierID kernel.UUID) ([]*vehicle.Vehicle, error) {
	return f.list(carrierID, false), nil
}

func (f fakeVehicles) ListAvailableByCarrier(_ context.Context, carrierID kernel.UUID) ([]*vehicle.Vehicle, error) {
	return f.list(carrierID, true), nil
}

func (f fakeVehicles) list(carrierID kernel.UUID, availableOnly bool) []*vehicle.Vehicle {
	var fleet []*vehicle.Vehicle
	for _, v := range f.r.vehicles {
		if !v.IsOwnedBy(carrierID) || (availableOnly && v.Status() != vehicle.Available) {
			continue
		}
		fleet = append(fleet, v)
	}
	sort.Slice(fleet, func(i, j int) bool { return fleet[i].Number().String() < fleet[j].Number().String() })
	return fleet
}

type fakeBids struct {
	ports.BidRepository
	r *fakeReader
}

func (f fakeBids) Get(_ context.Context, id kernel.UUID) (*bid.Bid, error) {
	if b, ok := f.r.bids[id]; ok {
		return b, nil
	}
	return nil, errs.NewObjectNotFoundError("bid", id)
}

type fakeInteractions struct {
	ports.InteractionRepository
	r *fakeReader
}

func (f fakeInteractions) Get(_ context.Context, carrierID, loadID kernel.UUID) (*interaction.Interaction, error) {
	if i, ok := f.r.interactions[[2]kernel.UUID{carrierID, loadID}]; ok {
		return i, nil
	}
	return nil, errs.NewObjectNotFoundError("interaction", loadID)
}

type fakeCarriers struct {
	ports.CarrierRepository
	r *fakeReader
}

func (f fakeCarriers) Get(_ context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if c, ok := f.r.carriers[id]; ok {
		return c, nil
	}
	return nil, errs.NewObjectNotFoundError("carrier", id)
}

type fakeShippers struct {
	ports.ShipperRepository
	r *fakeReader
}

func (f fakeShippers) Get(_ context.Context, id kernel.UUID) (*shipper.Shipper, error) {
	if s, ok := f.r.shippers[id]; ok {
		return s, nil
	}
	return nil, errs.NewObjectNotFoundError("shipper", id)
}

func profile(t *testing.T, company, email string) kernel.Profile {
	t.Helper()
	addr, err := kernel.NewAddress("address", "12 MG Road", "Pune", "MH", "411001")
	require.NoError(t, err)
	p, err := kernel.NewProfile("Asha Rao", company, email, "9876543210", "27AAPFU0939F1ZV", addr)
	require.NoError(t, err)
	return p
}

func (r *fakeReader) addShipper(t *testing.T) *shipper.Shipper {
	t.Helper()
	s, err := shipper.NewShipper(kernel.NewUUID(), profile(t, "Deccan Foods", "ops@deccanfoods.in"), shipper.FMCG, t0)
	require.NoError(t, err)
	r.shippers[s.ID()] = s
	return s
}

func (r *fakeReader) addCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(kernel.NewUUID(), profile(t, "Sahyadri Roadways", "desk@sahyadri.in"), t0)
	require.NoError(t, err)
	r.carriers[c.ID()] = c
	return c
}

func (r *fakeReader) addVehicle(t *testing.T, carrierID kernel.UUID, number string, tons int64) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), carrierID, vehicle.Spec{
		Number:            number,
		Type:              kernel.OpenBody,
		CapacityTons:      decimal.NewFromInt(tons),
		Dimensions:        vehicle.Dimensions{LengthFt: 22, WidthFt: 8, HeightFt: 7},
		ManufacturingYear: 2022,
	}, t0)
	require.NoError(t, err)
	r.vehicles[v.ID()] = v
	return v
}

// addLoad creates a 10 ton OPEN_BODY load whose bidding closes deadline after t0.
func (r *fakeReader) addLoad(t *testing.T, shipperID kernel.UUID, deadline time.Duration) *load.Load {
	t.Helper()
	pickup, err := kernel.NewAddress("pickup", "12 MG Road", "Pune", "MH", "411001")
	require.NoError(t, err)
	delivery, err := kernel.NewAddress("delivery", "5 Ring Road", "Delhi", "DL", "110001")
	require.NoError(t, err)

	l, err := load.NewLoad(kernel.NewUUID(), load.Draft{
		ShipperID:            shipperID,
		Pickup:               pickup,
		Delivery:             delivery,
		Material:             "Cement",
		WeightTons:           decimal.NewFromInt(10),
		RequiredTypes:        []kernel.VehicleType{kernel.OpenBody},
		BudgetPrice:          decimal.NewFromInt(50000),
		BiddingDeadline:      t0.Add(deadline),
		PickupDate:           t0.Add(deadline + time.Hour),
		ExpectedDeliveryDate: t0.Add(deadline + 2*time.Hour),
	}, t0)
	require.NoError(t, err)
	r.loads[l.ID()] = l
	return l
}

// addBid reserves v and records the carrier's BIDDED interaction.
func (r *fakeReader) addBid(t *testing.T, l *load.Load, v *vehicle.Vehicle, amount int64) *bid.Bid {
	t.Helper()
	require.NoError(t, v.MarkBidded())
	b, err := bid.NewBid(kernel.NewUUID(), l.ID(), v.CarrierID(), v.ID(), decimal.NewFromInt(amount), 12, t0)
	require.NoError(t, err)
	r.bids[b.ID()] = b

	i, err := interaction.NewInteraction(kernel.NewUUID(), v.CarrierID(), l.ID(), interaction.Bidded, t0)
	require.NoError(t, err)
	r.interactions[[2]kernel.UUID{v.CarrierID(), l.ID()}] = i
	return b
}
