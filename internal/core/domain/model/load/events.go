package load

import (
	"time"

	"freight/internal/core/domain/model/kernel"
)

const (
	EventLoadCreated   = "load.created"
	EventLoadAssigned  = "load.assigned"
	EventLoadInTransit = "load.in_transit"
	EventLoadDelivered = "load.delivered"
)

type CreatedEvent struct {
	kernel.Event
	ShipperID       kernel.UUID  `json:"shipperId"`
	Material        string       `json:"material"`
	RequiredTypes   []string     `json:"requiredVehicleTypes"`
	BudgetPrice     kernel.Money `json:"budgetPrice"`
	BiddingDeadline time.Time    `json:"biddingDeadline"`
}

type AssignedEvent struct {
	kernel.Event
	ShipperID kernel.UUID `json:"shipperId"`
	CarrierID kernel.UUID `json:"carrierId"`
	VehicleID kernel.UUID `json:"vehicleId"`
}

type InTransitEvent struct {
	kernel.Event
	CarrierID kernel.UUID `json:"carrierId"`
	VehicleID kernel.UUID `json:"vehicleId"`
}

type DeliveredEvent struct {
	kernel.Event
	ShipperID kernel.UUID `json:"shipperId"`
	CarrierID kernel.UUID `json:"carrierId"`
	VehicleID kernel.UUID `json:"vehicleId"`
}
