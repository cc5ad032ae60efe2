package http

import (
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type addressRequest struct {
	Street  string `json:"street"  validate:"required"`
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"   validate:"required"`
	Pincode string `json:"pincode" validate:"required,len=6,numeric"`
}

func (r addressRequest) input() commands.AddressInput {
	return commands.AddressInput{Street: r.Street, City: r.City, State: r.State, Pincode: r.Pincode}
}

type profileRequest struct {
	OwnerName     string         `json:"ownerName"     validate:"required"`
	CompanyName   string         `json:"companyName"   validate:"required"`
	ContactEmail  string         `json:"contactEmail"  validate:"required,email"`
	ContactNumber string         `json:"contactNumber" validate:"required,len=10,numeric"`
	GSTNumber     string         `json:"gstNumber"     validate:"required,len=15,alphanum"`
	Address       addressRequest `json:"address"`
}

func (r profileRequest) input() commands.ProfileInput {
	return commands.ProfileInput{
		OwnerName:     r.OwnerName,
		CompanyName:   r.CompanyName,
		Email:         r.ContactEmail,
		ContactNumber: r.ContactNumber,
		GSTNumber:     r.GSTNumber,
		Address:       r.Address.input(),
	}
}

type registerShipperRequest struct {
	profileRequest
	IndustryType string `json:"industryType" validate:"required"`
}

type createLoadRequest struct {
	PickupLocation       addressRequest  `json:"pickupLocation"`
	DeliveryLocation     addressRequest  `json:"deliveryLocation"`
	Material             string          `json:"material"             validate:"required"`
	Description          string          `json:"description"          validate:"max=500"`
	WeightTons           decimal.Decimal `json:"weightTons"`
	VolumeLitres         decimal.Decimal `json:"volumeLitres"`
	RequiredVehicleTypes []string        `json:"requiredVehicleTypes" validate:"required,min=1,dive,required"`
	BudgetPrice          decimal.Decimal `json:"budgetPrice"`
	BiddingDeadline      time.Time       `json:"biddingDeadline"      validate:"required"`
	PickupDate           time.Time       `json:"pickupDate"           validate:"required"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate" validate:"required"`
}

func (r createLoadRequest) input() commands.LoadInput {
	return commands.LoadInput{
		Pickup:               r.PickupLocation.input(),
		Delivery:             r.DeliveryLocation.input(),
		Material:             r.Material,
		Description:          r.Description,
		WeightTons:           r.WeightTons,
		VolumeLitres:         r.VolumeLitres,
		RequiredVehicleTypes: r.RequiredVehicleTypes,
		BudgetPrice:          r.BudgetPrice,
		BiddingDeadline:      r.BiddingDeadline,
		PickupDate:           r.PickupDate,
		ExpectedDeliveryDate: r.ExpectedDeliveryDate,
	}
}

type vehicleDimensions struct {
	LengthFt float64 `json:"lengthFt" validate:"gte=0"`
	WidthFt  float64 `json:"widthFt"  validate:"gte=0"`
	HeightFt float64 `json:"heightFt" validate:"gte=0"`
}

type addVehicleRequest struct {
	VehicleNumber     string            `json:"vehicleNumber"     validate:"required"`
	VehicleType       string            `json:"vehicleType"       validate:"required"`
	CapacityTons      decimal.Decimal   `json:"capacityTons"`
	CapacityLitres    decimal.Decimal   `json:"capacityLitres"`
	Dimensions        vehicleDimensions `json:"dimensions"`
	ManufacturingYear int               `json:"manufacturingYear" validate:"gte=0"`
}

func (r addVehicleRequest) input() commands.VehicleInput {
	return commands.VehicleInput{
		Number:            r.VehicleNumber,
		Type:              r.VehicleType,
		CapacityTons:      r.CapacityTons,
		CapacityLitres:    r.CapacityLitres,
		LengthFt:          r.Dimensions.LengthFt,
		WidthFt:           r.Dimensions.WidthFt,
		HeightFt:          r.Dimensions.HeightFt,
		ManufacturingYear: r.ManufacturingYear,
	}
}

// updateVehicleRequest carries only the fields to change.
type updateVehicleRequest struct {
	VehicleNumber     string            `json:"vehicleNumber"`
	VehicleType       string            `json:"vehicleType"`
	CapacityTons      decimal.Decimal   `json:"capacityTons"`
	CapacityLitres    decimal.Decimal   `json:"capacityLitres"`
	Dimensions        vehicleDimensions `json:"dimensions"`
	ManufacturingYear int               `json:"manufacturingYear" validate:"gte=0"`
}

func (r updateVehicleRequest) input() commands.VehicleInput {
	return addVehicleRequest(r).input()
}

type placeBidRequest struct {
	VehicleID                 string          `json:"vehicleId"                 validate:"required,uuid"`
	BidAmount                 decimal.Decimal `json:"bidAmount"`
	EstimatedTransitTimeHours int             `json:"estimatedTransitTimeHours" validate:"gte=0"`
}

type updateVehicleStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type rateCarrierRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type createdResponse struct {
	ID kernel.UUID `json:"id"`
}

type removalResponse struct {
	ID      kernel.UUID `json:"id"`
	Outcome string      `json:"outcome"`
}

// bind decodes the JSON body and checks its shape with the router's
// validator. A malformed body is a validation failure.
func bind(c echo.Context, into any) error {
	if err := c.Bind(into); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return c.Validate(into)
}

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
