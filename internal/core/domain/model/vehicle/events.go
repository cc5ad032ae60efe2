package vehicle

import "freight/internal/core/domain/model/kernel"

const (
	EventVehicleRegistered = "vehicle.registered"
	EventVehicleUpdated    = "vehicle.updated"
	EventVehicleRetired    = "vehicle.retired"
)

type RegisteredEvent struct {
	kernel.Event
	CarrierID kernel.UUID `json:"carrierId"`
	Number    string      `json:"vehicleNumber"`
	Type      string      `json:"vehicleType"`
	Capacity  string      `json:"capacity"`
}

type UpdatedEvent struct {
	kernel.Event
	CarrierID kernel.UUID `json:"carrierId"`
	Number    string      `json:"vehicleNumber"`
	Type      string      `json:"vehicleType"`
	Capacity  string      `json:"capacity"`
}

type RetiredEvent struct {
	kernel.Event
	CarrierID kernel.UUID `json:"carrierId"`
	Number    string      `json:"vehicleNumber"`
}
