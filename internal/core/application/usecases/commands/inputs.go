package commands

import (
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// AddressInput is an address as submitted by a client.
type AddressInput struct {
	Street  string
	City    string
	State   string
	Pincode string
}

func (a AddressInput) build(label string) (kernel.Address, error) {
	return kernel.NewAddress(label, a.Street, a.City, a.State, a.Pincode)
}

// ProfileInput is a carrier's or shipper's business profile as submitted.
type ProfileInput struct {
	OwnerName     string
	CompanyName   string
	Email         string
	ContactNumber string
	GSTNumber     string
	Address       AddressInput
}

func (p ProfileInput) build() (kernel.Profile, error) {
	address, err := p.Address.build("address")
	if err != nil {
		return kernel.Profile{}, err
	}
	return kernel.NewProfile(p.OwnerName, p.CompanyName, p.Email, p.ContactNumber, p.GSTNumber, address)
}

// LoadInput is a new load as submitted by a shipper. Vehicle types are wire
// names such as "OPEN_BODY".
type LoadInput struct {
	Pickup               AddressInput
	Delivery             AddressInput
	Material             string
	Description          string
	WeightTons           decimal.Decimal
	VolumeLitres         decimal.Decimal
	RequiredVehicleTypes []string
	BudgetPrice          decimal.Decimal
	BiddingDeadline      time.Time
	PickupDate           time.Time
	ExpectedDeliveryDate time.Time
}

// VehicleInput is a new vehicle as submitted by a carrier.
type VehicleInput struct {
	Number            string
	Type              string
	CapacityTons      decimal.Decimal
	CapacityLitres    decimal.Decimal
	LengthFt          float64
	WidthFt           float64
	HeightFt          float64
	ManufacturingYear int
}
