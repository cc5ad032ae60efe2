package queries

import (
	"context"

	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

type ShipperBidDetailResponse struct {
	Bid     BidView     `json:"bid"`
	Carrier CarrierView `json:"carrier"`
	Vehicle VehicleView `json:"vehicle"`
}

type ShipperBidDetailQueryHandler struct {
	reader Reader
	clock  ports.Clock
	policy services.VisibilityPolicy
}

func NewShipperBidDetailQueryHandler(reader Reader, clock ports.Clock) ShipperBidDetailQueryHandler {
	return ShipperBidDetailQueryHandler{reader: reader, clock: clock, policy: services.NewVisibilityPolicy()}
}

func (h ShipperBidDetailQueryHandler) Handle(
	ctx context.Context,
	query ShipperBidDetailQuery,
) (ShipperBidDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipperBidDetailResponse{}, err
	}

	b, err := h.reader.BidRepository().Get(ctx, query.BidID())
	if err != nil {
		return ShipperBidDetailResponse{}, err
	}
	l, err := h.reader.LoadRepository().Get(ctx, b.LoadID())
	if err != nil {
		return ShipperBidDetailResponse{}, err
	}
	if err = h.policy.CheckShipperBid(b, l, query.ShipperID(), h.clock.Now()); err != nil {
		return ShipperBidDetailResponse{}, err
	}

	c, err := h.reader.CarrierRepository().Get(ctx, b.CarrierID())
	if err != nil {
		return ShipperBidDetailResponse{}, err
	}
	v, err := h.reader.VehicleRepository().Get(ctx, b.VehicleID())
	if err != nil {
		return ShipperBidDetailResponse{}, err
	}

	return ShipperBidDetailResponse{
		Bid:     newBidView(b),
		Carrier: newCarrierView(c),
		Vehicle: newVehicleView(v),
	}, nil
}
