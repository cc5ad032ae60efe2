package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListShipperLoadsQueryIsNotConstructed = errors.New(
	"ListShipperLoadsQuery must be created via NewListShipperLoadsQuery constructor",
)

// ListShipperLoadsQuery lists a shipper's loads, newest first, optionally
// filtered by load status.
type ListShipperLoadsQuery struct {
	shipperID kernel.UUID
	status    load.Status

	guard guard.ConstructorGuard
}

// NewListShipperLoadsQuery accepts an empty status for no filter.
func NewListShipperLoadsQuery(shipperID kernel.UUID, status string) (ListShipperLoadsQuery, error) {
	var statusErr error
	filter := load.Unknown
	if status != "" {
		filter, statusErr = load.ParseStatus(status)
	}
	if err := errors.Join(shipperID.Validate(), statusErr); err != nil {
		return ListShipperLoadsQuery{}, err
	}
	return ListShipperLoadsQuery{shipperID: shipperID, status: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListShipperLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListShipperLoadsQueryIsNotConstructed)
}

func (q ListShipperLoadsQuery) ShipperID() kernel.UUID {
	return q.shipperID
}

// Status is load.Unknown when no filter was given.
func (q ListShipperLoadsQuery) Status() load.Status {
	return q.status
}

// ListShipperLoadsQueryResponse is one load row. BidCount counts the PENDING
// bids, which only exist while the load is CREATED.
type ListShipperLoadsQueryResponse struct {
	ID              kernel.UUID     `json:"id"`
	Material        string          `json:"material"`
	PickupCity      string          `json:"pickupCity"`
	DeliveryCity    string          `json:"deliveryCity"`
	BudgetPrice     decimal.Decimal `json:"budgetPrice"`
	Status          string          `json:"status"`
	BiddingDeadline time.Time       `json:"biddingDeadline"`
	PickupDate      time.Time       `json:"pickupDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	BidCount        int             `json:"bidCount"`
	IsRated         bool            `json:"isRated"`
}
