package queries

import (
	"context"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// LoadDetailResponse adds the shipper and the carrier's own interaction to the load.
type LoadDetailResponse struct {
	Load        LoadView    `json:"load"`
	Shipper     ShipperView `json:"shipper"`
	Interaction string      `json:"interaction,omitempty"`
}

type LoadDetailQueryHandler struct {
	reader Reader
	clock  ports.Clock
	policy services.VisibilityPolicy
}

func NewLoadDetailQueryHandler(reader Reader, clock ports.Clock) LoadDetailQueryHandler {
	return LoadDetailQueryHandler{reader: reader, clock: clock, policy: services.NewVisibilityPolicy()}
}

func (h LoadDetailQueryHandler) Handle(ctx context.Context, query LoadDetailQuery) (LoadDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return LoadDetailResponse{}, err
	}

	l, err := h.reader.LoadRepository().Get(ctx, query.LoadID())
	if err != nil {
		return LoadDetailResponse{}, err
	}
	prior, err := findInteraction(ctx, h.reader.InteractionRepository(), query.CarrierID(), l.ID())
	if err != nil {
		return LoadDetailResponse{}, err
	}
	if err = h.policy.CheckCarrierLoad(l, prior, h.clock.Now()); err != nil {
		return LoadDetailResponse{}, err
	}

	s, err := h.reader.ShipperRepository().Get(ctx, l.ShipperID())
	if err != nil {
		return LoadDetailResponse{}, err
	}

	view := newLoadView(l)
	if l.Status() == load.Created {
		view = view.withoutAssignment()
	}
	resp := LoadDetailResponse{Load: view, Shipper: newShipperView(s)}
	if prior != nil {
		resp.Interaction = prior.Kind().String()
	}
	return resp, nil
}
