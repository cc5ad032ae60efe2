package queries

import (
	"context"

	"freight/internal/core/domain/services"
)

type ShipperLoadDetailResponse struct {
	Load    LoadView    `json:"load"`
	Carrier CarrierView `json:"carrier"`
	Vehicle VehicleView `json:"vehicle"`
}

// ShipperLoadDetailQueryHandler only answers while the load is ASSIGNED or IN_TRANSIT.
type ShipperLoadDetailQueryHandler struct {
	reader Reader
	policy services.VisibilityPolicy
}

func NewShipperLoadDetailQueryHandler(reader Reader) ShipperLoadDetailQueryHandler {
	return ShipperLoadDetailQueryHandler{reader: reader, policy: services.NewVisibilityPolicy()}
}

func (h ShipperLoadDetailQueryHandler) Handle(
	ctx context.Context,
	query ShipperLoadDetailQuery,
) (ShipperLoadDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipperLoadDetailResponse{}, err
	}

	l, err := h.reader.LoadRepository().Get(ctx, query.LoadID())
	if err != nil {
		return ShipperLoadDetailResponse{}, err
	}
	if err = h.policy.CheckShipperLoad(l, query.ShipperID()); err != nil {
		return ShipperLoadDetailResponse{}, err
	}

	c, err := h.reader.CarrierRepository().Get(ctx, *l.SelectedCarrier())
	if err != nil {
		return ShipperLoadDetailResponse{}, err
	}
	v, err := h.reader.VehicleRepository().Get(ctx, *l.AssignedVehicle())
	if err != nil {
		return ShipperLoadDetailResponse{}, err
	}

	return ShipperLoadDetailResponse{
		Load:    newLoadView(l),
		Carrier: newCarrierView(c),
		Vehicle: newVehicleView(v),
	}, nil
}
