package bid

import "freight/internal/core/domain/model/kernel"

const (
	EventBidPlaced   = "bid.placed"
	EventBidAccepted = "bid.accepted"
	EventBidRejected = "bid.rejected"
)

type PlacedEvent struct {
	kernel.Event
	LoadID         kernel.UUID  `json:"loadId"`
	CarrierID      kernel.UUID  `json:"carrierId"`
	VehicleID      kernel.UUID  `json:"vehicleId"`
	Amount         kernel.Money `json:"bidAmount"`
	EstimatedHours int          `json:"estimatedTransitTimeHours"`
}

type AcceptedEvent struct {
	kernel.Event
	LoadID    kernel.UUID  `json:"loadId"`
	CarrierID kernel.UUID  `json:"carrierId"`
	VehicleID kernel.UUID  `json:"vehicleId"`
	Amount    kernel.Money `json:"bidAmount"`
}

type RejectedEvent struct {
	kernel.Event
	LoadID    kernel.UUID `json:"loadId"`
	CarrierID kernel.UUID `json:"carrierId"`
	VehicleID kernel.UUID `json:"vehicleId"`
}
