package queries

import (
	"context"

	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

type CarrierBidDetailResponse struct {
	Bid     BidView     `json:"bid"`
	Load    LoadView    `json:"load"`
	Shipper ShipperView `json:"shipper"`
	Vehicle VehicleView `json:"vehicle"`
}

type CarrierBidDetailQueryHandler struct {
	reader Reader
	clock  ports.Clock
	policy services.VisibilityPolicy
}

func NewCarrierBidDetailQueryHandler(reader Reader, clock ports.Clock) CarrierBidDetailQueryHandler {
	return CarrierBidDetailQueryHandler{reader: reader, clock: clock, policy: services.NewVisibilityPolicy()}
}

func (h CarrierBidDetailQueryHandler) Handle(
	ctx context.Context,
	query CarrierBidDetailQuery,
) (CarrierBidDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return CarrierBidDetailResponse{}, err
	}

	b, err := h.reader.BidRepository().Get(ctx, query.BidID())
	if err != nil {
		return CarrierBidDetailResponse{}, err
	}
	l, err := h.reader.LoadRepository().Get(ctx, b.LoadID())
	if err != nil {
		return CarrierBidDetailResponse{}, err
	}
	if err = h.policy.CheckCarrierBid(b, l, query.CarrierID(), h.clock.Now()); err != nil {
		return CarrierBidDetailResponse{}, err
	}

	s, err := h.reader.ShipperRepository().Get(ctx, l.ShipperID())
	if err != nil {
		return CarrierBidDetailResponse{}, err
	}
	v, err := h.reader.VehicleRepository().Get(ctx, b.VehicleID())
	if err != nil {
		return CarrierBidDetailResponse{}, err
	}

	return CarrierBidDetailResponse{
		Bid:     newBidView(b),
		Load:    newLoadView(l),
		Shipper: newShipperView(s),
		Vehicle: newVehicleView(v),
	}, nil
}
