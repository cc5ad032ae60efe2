package roles

import (
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
)

// Handlers is every use case a role may reach.
type Handlers struct {
	CreateLoad          commands.CreateLoadCommandHandler
	PlaceBid            commands.PlaceBidCommandHandler
	MarkNotInterested   commands.MarkNotInterestedCommandHandler
	AcceptBid           commands.AcceptBidCommandHandler
	StartTransit        commands.StartTransitCommandHandler
	MarkDelivered       commands.MarkDeliveredCommandHandler
	RateCarrier         commands.RateCarrierCommandHandler
	AddVehicle          commands.AddVehicleCommandHandler
	UpdateVehicle       commands.UpdateVehicleDetailsCommandHandler
	UpdateVehicleStatus commands.UpdateVehicleStatusCommandHandler
	MarkMaintenance     commands.MarkMaintenanceCommandHandler
	RemoveVehicle       commands.RemoveVehicleCommandHandler

	EligibleLoads     queries.EligibleLoadsQueryHandler
	LoadDetail        queries.LoadDetailQueryHandler
	EligibleVehicles  queries.EligibleVehiclesQueryHandler
	ListCarrierBids   queries.ListCarrierBidsQueryHandler
	CarrierBidDetail  queries.CarrierBidDetailQueryHandler
	ListShipperLoads  queries.ListShipperLoadsQueryHandler
	ShipperLoadDetail queries.ShipperLoadDetailQueryHandler
	BidsForLoad       queries.BidsForLoadQueryHandler
	ShipperBidDetail  queries.ShipperBidDetailQueryHandler
	ListVehicles      queries.ListVehiclesQueryHandler
	VehicleDetail     queries.VehicleDetailQueryHandler
}

// Registry hands out the capability set of a principal's role.
type Registry struct {
	handlers Handlers
}

func NewRegistry(handlers Handlers) *Registry {
	return &Registry{handlers: handlers}
}

// Carrier returns the bidding and trip operations of a carrier.
func (r *Registry) Carrier(p Principal) (CarrierActions, error) {
	if err := p.require(Carrier, "bid on loads"); err != nil {
		return nil, err
	}
	return carrierActions{carrierID: p.ID, h: &r.handlers}, nil
}

// Shipper returns the load posting and award operations of a shipper.
func (r *Registry) Shipper(p Principal) (ShipperActions, error) {
	if err := p.require(Shipper, "post loads"); err != nil {
		return nil, err
	}
	return shipperActions{shipperID: p.ID, h: &r.handlers}, nil
}

// Fleet returns the vehicle management operations of a carrier.
func (r *Registry) Fleet(p Principal) (FleetActions, error) {
	if err := p.require(Carrier, "manage vehicles"); err != nil {
		return nil, err
	}
	return fleetActions{carrierID: p.ID, h: &r.handlers}, nil
}
