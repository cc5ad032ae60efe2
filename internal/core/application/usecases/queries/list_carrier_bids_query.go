package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListCarrierBidsQueryIsNotConstructed = errors.New(
	"ListCarrierBidsQuery must be created via NewListCarrierBidsQuery constructor",
)

// ListCarrierBidsQuery lists a carrier's bids, newest first, optionally
// filtered by bid status.
//
// Example:
//
//	query, err := NewListCarrierBidsQuery(carrierID, "PENDING")
//	bids, err := NewListCarrierBidsQueryHandler(db).Handle(ctx, query)
type ListCarrierBidsQuery struct {
	carrierID kernel.UUID
	status    bid.Status

	guard guard.ConstructorGuard
}

// NewListCarrierBidsQuery accepts an empty status for no filter.
func NewListCarrierBidsQuery(carrierID kernel.UUID, status string) (ListCarrierBidsQuery, error) {
	var statusErr error
	filter := bid.UnknownStatus
	if status != "" {
		filter, statusErr = bid.ParseStatus(status)
	}
	if err := errors.Join(carrierID.Validate(), statusErr); err != nil {
		return ListCarrierBidsQuery{}, err
	}
	return ListCarrierBidsQuery{carrierID: carrierID, status: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCarrierBidsQuery) Validate() error {
	return q.guard.Validate(ErrListCarrierBidsQueryIsNotConstructed)
}

func (q ListCarrierBidsQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// Status is bid.UnknownStatus when no filter was given.
func (q ListCarrierBidsQuery) Status() bid.Status {
	return q.status
}

// ListCarrierBidsQueryResponse is one bid with enough of its load, shipper
// and vehicle to render a list row.
type ListCarrierBidsQueryResponse struct {
	BidID                     kernel.UUID     `json:"id"`
	LoadID                    kernel.UUID     `json:"loadId"`
	VehicleID                 kernel.UUID     `json:"vehicleId"`
	BidAmount                 decimal.Decimal `json:"bidAmount"`
	EstimatedTransitTimeHours int             `json:"estimatedTransitTimeHours"`
	Status                    string          `json:"status"`
	CreatedAt                 time.Time       `json:"createdAt"`
	Material                  string          `json:"material"`
	PickupCity                string          `json:"pickupCity"`
	DeliveryCity              string          `json:"deliveryCity"`
	PickupDate                time.Time       `json:"pickupDate"`
	LoadStatus                string          `json:"loadStatus"`
	ShipperCompany            string          `json:"shipperCompanyName"`
	VehicleNumber             string          `json:"vehicleNumber"`
	VehicleType               string          `json:"vehicleType"`
}
