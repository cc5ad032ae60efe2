package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrBidsForLoadQueryIsNotConstructed = errors.New(
	"BidsForLoadQuery must be created via NewBidsForLoadQuery constructor",
)

// BidsForLoadQuery lists the PENDING bids on a shipper's CREATED load.
type BidsForLoadQuery struct {
	shipperID kernel.UUID
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewBidsForLoadQuery(shipperID, loadID kernel.UUID) (BidsForLoadQuery, error) {
	if err := errors.Join(shipperID.Validate(), loadID.Validate()); err != nil {
		return BidsForLoadQuery{}, err
	}
	return BidsForLoadQuery{shipperID: shipperID, loadID: loadID, guard: guard.NewConstructorGuard()}, nil
}

func (q BidsForLoadQuery) Validate() error {
	return q.guard.Validate(ErrBidsForLoadQueryIsNotConstructed)
}

func (q BidsForLoadQuery) ShipperID() kernel.UUID {
	return q.shipperID
}

func (q BidsForLoadQuery) LoadID() kernel.UUID {
	return q.loadID
}

type BidsForLoadQueryResponse struct {
	BidID                     kernel.UUID     `json:"id"`
	CarrierID                 kernel.UUID     `json:"carrierId"`
	VehicleID                 kernel.UUID     `json:"vehicleId"`
	BidAmount                 decimal.Decimal `json:"bidAmount"`
	EstimatedTransitTimeHours int             `json:"estimatedTransitTimeHours"`
	CreatedAt                 time.Time       `json:"createdAt"`
	CarrierCompany            string          `json:"carrierCompanyName"`
	CarrierRating             decimal.Decimal `json:"carrierRating"`
	CarrierRatingCount        int             `json:"carrierRatingCount"`
	CarrierTotalTrips         int             `json:"carrierTotalTrips"`
	VehicleNumber             string          `json:"vehicleNumber"`
	VehicleType               string          `json:"vehicleType"`
}
