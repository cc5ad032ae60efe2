package http

import (
	"context"

	"freight/internal/core/application/roles"
	"freight/internal/core/application/usecases/commands"
)

// Marketplace hands out the capability set of a principal's role.
// *roles.Registry implements it.
type Marketplace interface {
	Carrier(p roles.Principal) (roles.CarrierActions, error)
	Shipper(p roles.Principal) (roles.ShipperActions, error)
	Fleet(p roles.Principal) (roles.FleetActions, error)
}

type carrierRegistrar interface {
	Handle(ctx context.Context, cmd commands.RegisterCarrierCommand) error
}

type shipperRegistrar interface {
	Handle(ctx context.Context, cmd commands.RegisterShipperCommand) error
}

// Server translates HTTP requests into marketplace operations. It owns no
// rules of its own: role gating, ownership and state checks all happen in the
// core, and failures come back as typed errors for the error handler.
type Server struct {
	marketplace     Marketplace
	registerCarrier carrierRegistrar
	registerShipper shipperRegistrar
}

func NewServer(
	marketplace Marketplace,
	registerCarrier carrierRegistrar,
	registerShipper shipperRegistrar,
) *Server {
	return &Server{
		marketplace:     marketplace,
		registerCarrier: registerCarrier,
		registerShipper: registerShipper,
	}
}
