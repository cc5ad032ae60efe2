package commands_test

import (
	"fmt"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

// marketplace drives the real command handlers over a memoryStore.
type marketplace struct {
	t         *testing.T
	store     *memoryStore
	clock     *clock.Fixed
	shipperID kernel.UUID
	vehicles  int
	carriers  int
}

func newMarketplace(t *testing.T) *marketplace {
	t.Helper()
	m := &marketplace{
		t:         t,
		store:     newMemoryStore(),
		clock:     &clock.Fixed{At: t0},
		shipperID: kernel.NewUUID(),
	}

	cmd, err := commands.NewRegisterShipperCommand(m.shipperID, profileInput("dispatch@acme.in", "19AAACD1234E1Z5"), "FMCG")
	require.NoError(t, err)
	require.NoError(t, commands.NewRegisterShipperCommandHandler(m.store, m.clock).Handle(t.Context(), cmd))
	return m
}

func profileInput(email, gst string) commands.ProfileInput {
	return commands.ProfileInput{
		OwnerName:     "Ravi Kumar",
		CompanyName:   "Kumar Roadlines",
		Email:         email,
		ContactNumber: "9876543210",
		GSTNumber:     gst,
		Address: commands.AddressInput{
			Street:  "7 Link Road",
			City:    "Mumbai",
			State:   "MH",
			Pincode: "400001",
		},
	}
}

func (m *marketplace) at(offset time.Duration) {
	m.clock.At = t0.Add(offset)
}

func (m *marketplace) registerCarrier() kernel.UUID {
	m.t.Helper()
	m.carriers++
	id := kernel.NewUUID()
	in := profileInput(fmt.Sprintf("fleet%d@roadlines.in", m.carriers), "27AAPFU0939F1ZV")
	cmd, err := commands.NewRegisterCarrierCommand(id, in)
	require.NoError(m.t, err)
	require.NoError(m.t, commands.NewRegisterCarrierCommandHandler(m.store, m.clock).Handle(m.t.Context(), cmd))
	return id
}

func (m *marketplace) addVehicle(carrierID kernel.UUID) kernel.UUID {
	m.t.Helper()
	m.vehicles++
	id := kernel.NewUUID()
	cmd, err := commands.NewAddVehicleCommand(id, carrierID, commands.VehicleInput{
		Number:            fmt.Sprintf("MH12AB%04d", m.vehicles),
		Type:              "OPEN_BODY",
		CapacityTons:      decimal.NewFromInt(20),
		LengthFt:          20,
		WidthFt:           8,
		HeightFt:          7,
		ManufacturingYear: 2022,
	})
	require.NoError(m.t, err)
	require.NoError(m.t, commands.NewAddVehicleCommandHandler(m.store, m.clock).Handle(m.t.Context(), cmd))
	return id
}

// createLoad posts an OPEN_BODY load with bidding closing at t0+1h, pickup
// at t0+2h and delivery at t0+3h.
func (m *marketplace) createLoad() kernel.UUID {
	m.t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(id, m.shipperID, loadInput())
	require.NoError(m.t, err)
	require.NoError(m.t, commands.NewCreateLoadCommandHandler(m.store, m.clock).Handle(m.t.Context(), cmd))
	return id
}

func loadInput() commands.LoadInput {
	return commands.LoadInput{
		Pickup:               commands.AddressInput{Street: "12 MG Road", City: "Pune", State: "MH", Pincode: "411001"},
		Delivery:             commands.AddressInput{Street: "5 Ring Road", City: "Delhi", State: "DL", Pincode: "110001"},
		Material:             "Cement",
		WeightTons:           decimal.NewFromInt(10),
		RequiredVehicleTypes: []string{"OPEN_BODY", "CLOSED_CONTAINER"},
		BudgetPrice:          decimal.NewFromInt(1000),
		BiddingDeadline:      t0.Add(time.Hour),
		PickupDate:           t0.Add(2 * time.Hour),
		ExpectedDeliveryDate: t0.Add(3 * time.Hour),
	}
}

func (m *marketplace) placeBid(carrierID, loadID, vehicleID kernel.UUID, amount int64) (kernel.UUID, error) {
	m.t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewPlaceBidCommand(id, carrierID, loadID, vehicleID, decimal.NewFromInt(amount), 12)
	require.NoError(m.t, err)
	return id, commands.NewPlaceBidCommandHandler(m.store, m.clock).Handle(m.t.Context(), cmd)
}

func (m *marketplace) mustPlaceBid(carrierID, loadID, vehicleID kernel.UUID, amount int64) kernel.UUID {
	m.t.Helper()
	id, err := m.placeBid(carrierID, loadID, vehicleID, amount)
	require.NoError(m.t, err)
	return id
}

func (m *marketplace) acceptBid(bidID kernel.UUID) error {
	m.t.Helper()
	cmd, err := commands.NewAcceptBidCommand(m.shipperID, bidID)
	require.NoError(m.t, err)
	return commands.NewAcceptBidCommandHandler(m.store, m.clock).Handle(m.t.Context(), cmd)
}

func (m *marketplace) startTransit(carrierID, loadID kernel.UUID) error {
	m.t.Helper()
	cmd, err := commands.NewStartTransitCommand(carrierID, loadID)
	require.NoError(m.t, err)
	return commands.NewStartTransitCommandHandler(m.store, m.clock).Handle(m.t.Context(), cmd)
}

func (m *marketplace) markDelivered(carrierID, loadID kernel.UUID) error {
	m.t.Helper()
	cmd, err := commands.NewMarkDeliveredCommand(carrierID, loadID)
	require.NoError(m.t, err)
	return commands.NewMarkDeliveredCommandHandler(m.store, m.clock).Handle(m.t.Context(), cmd)
}

func (m *marketplace) rate(loadID kernel.UUID, score int) error {
	m.t.Helper()
	cmd, err := commands.NewRateCarrierCommand(kernel.NewUUID(), m.shipperID, loadID, score)
	require.NoError(m.t, err)
	return commands.NewRateCarrierCommandHandler(m.store, m.clock).Handle(m.t.Context(), cmd)
}
