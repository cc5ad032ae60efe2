package queries

import (
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/shipper"
	"freight/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
)

type AddressView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

func newAddressView(a kernel.Address) AddressView {
	return AddressView{
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		Pincode: a.Pincode(),
	}
}

// CapacityView is a load requirement or vehicle capacity with its unit,
// TONS or LITRES.
type CapacityView struct {
	Unit  string          `json:"unit"`
	Value decimal.Decimal `json:"value"`
}

func newCapacityView(c kernel.Capacity) CapacityView {
	return CapacityView{
		Unit:  c.Unit().String(),
		Value: c.Value(),
	}
}

type LoadView struct {
	ID                   kernel.UUID  `json:"id"`
	ShipperID            kernel.UUID  `json:"shipperId"`
	Pickup               AddressView  `json:"pickupLocation"`
	Delivery             AddressView  `json:"deliveryLocation"`
	Material             string       `json:"material"`
	Description          string       `json:"description,omitempty"`
	Requirement          CapacityView `json:"requirement"`
	RequiredVehicleTypes []string     `json:"requiredVehicleTypes"`
	BudgetPrice          kernel.Money `json:"budgetPrice"`
	BiddingDeadline      time.Time    `json:"biddingDeadline"`
	PickupDate           time.Time    `json:"pickupDate"`
	ExpectedDeliveryDate time.Time    `json:"expectedDeliveryDate"`
	SelectedCarrierID    *kernel.UUID `json:"selectedCarrierId,omitempty"`
	AssignedVehicleID    *kernel.UUID `json:"assignedVehicleId,omitempty"`
	Status               string       `json:"status"`
	CreatedAt            time.Time    `json:"createdAt"`
}

func newLoadView(l *load.Load) LoadView {
	s := l.Schedule()
	return LoadView{
		ID:                   l.ID(),
		ShipperID:            l.ShipperID(),
		Pickup:               newAddressView(l.Pickup()),
		Delivery:             newAddressView(l.Delivery()),
		Material:             l.Material(),
		Description:          l.Description(),
		Requirement:          newCapacityView(l.Requirement()),
		RequiredVehicleTypes: l.RequiredTypes().Strings(),
		BudgetPrice:          l.Budget(),
		BiddingDeadline:      s.BiddingDeadline(),
		PickupDate:           s.PickupDate(),
		ExpectedDeliveryDate: s.ExpectedDeliveryDate(),
		SelectedCarrierID:    l.SelectedCarrier(),
		AssignedVehicleID:    l.AssignedVehicle(),
		Status:               l.Status().String(),
		CreatedAt:            l.CreatedAt(),
	}
}

// withoutAssignment hides who won the load from carriers that are still browsing.
func (v LoadView) withoutAssignment() LoadView {
	v.SelectedCarrierID = nil
	v.AssignedVehicleID = nil
	return v
}

type DimensionsView struct {
	LengthFt float64 `json:"lengthFt"`
	WidthFt  float64 `json:"widthFt"`
	HeightFt float64 `json:"heightFt"`
}

type VehicleView struct {
	ID                kernel.UUID     `json:"id"`
	CarrierID         kernel.UUID     `json:"carrierId"`
	VehicleNumber     string          `json:"vehicleNumber"`
	VehicleType       string          `json:"vehicleType"`
	Capacity          CapacityView    `json:"capacity"`
	Dimensions        *DimensionsView `json:"dimensions,omitempty"`
	ManufacturingYear int             `json:"manufacturingYear"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func newVehicleView(v *vehicle.Vehicle) VehicleView {
	view := VehicleView{
		ID:                v.ID(),
		CarrierID:         v.CarrierID(),
		VehicleNumber:     v.Number().String(),
		VehicleType:       v.Type().String(),
		Capacity:          newCapacityView(v.Capacity()),
		ManufacturingYear: v.ManufacturingYear(),
		Status:            v.Status().String(),
		CreatedAt:         v.CreatedAt(),
	}
	if v.Type() != kernel.Tanker {
		d := v.Dimensions()
		view.Dimensions = &DimensionsView{LengthFt: d.LengthFt, WidthFt: d.WidthFt, HeightFt: d.HeightFt}
	}
	return view
}

func newVehicleViews(vehicles []*vehicle.Vehicle) []VehicleView {
	views := make([]VehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		views = append(views, newVehicleView(v))
	}
	return views
}

type BidView struct {
	ID                        kernel.UUID  `json:"id"`
	LoadID                    kernel.UUID  `json:"loadId"`
	CarrierID                 kernel.UUID  `json:"carrierId"`
	VehicleID                 kernel.UUID  `json:"vehicleId"`
	BidAmount                 kernel.Money `json:"bidAmount"`
	EstimatedTransitTimeHours int          `json:"estimatedTransitTimeHours"`
	Status                    string       `json:"status"`
	CreatedAt                 time.Time    `json:"createdAt"`
}

func newBidView(b *bid.Bid) BidView {
	return BidView{
		ID:                        b.ID(),
		LoadID:                    b.LoadID(),
		CarrierID:                 b.CarrierID(),
		VehicleID:                 b.VehicleID(),
		BidAmount:                 b.Amount(),
		EstimatedTransitTimeHours: b.EstimatedHours(),
		Status:                    b.Status().String(),
		CreatedAt:                 b.CreatedAt(),
	}
}

// CarrierView is what a shipper sees of a carrier: contact and reputation.
type CarrierView struct {
	ID            kernel.UUID     `json:"id"`
	CompanyName   string          `json:"companyName"`
	OwnerName     string          `json:"ownerName"`
	ContactNumber string          `json:"contactNumber"`
	Email         string          `json:"contactEmail"`
	Rating        decimal.Decimal `json:"rating"`
	RatingCount   int             `json:"ratingCount"`
	TotalTrips    int             `json:"totalTrips"`
	FleetSize     int             `json:"fleetSize"`
}

func newCarrierView(c *carrier.Carrier) CarrierView {
	p := c.Profile()
	return CarrierView{
		ID:            c.ID(),
		CompanyName:   p.CompanyName(),
		OwnerName:     p.OwnerName(),
		ContactNumber: p.ContactNumber(),
		Email:         p.Email(),
		Rating:        c.Rating(),
		RatingCount:   c.RatingCount(),
		TotalTrips:    c.TotalTrips(),
		FleetSize:     c.FleetSize(),
	}
}

// ShipperView is what a carrier sees of the shipper behind a load.
type ShipperView struct {
	ID            kernel.UUID `json:"id"`
	CompanyName   string      `json:"companyName"`
	ContactNumber string      `json:"contactNumber"`
	IndustryType  string      `json:"industryType"`
}

func newShipperView(s *shipper.Shipper) ShipperView {
	return ShipperView{
		ID:            s.ID(),
		CompanyName:   s.Profile().CompanyName(),
		ContactNumber: s.Profile().ContactNumber(),
		IndustryType:  s.IndustryType().String(),
	}
}
