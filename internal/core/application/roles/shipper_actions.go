package roles

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
)

// ShipperActions are the operations a shipper performs on its own loads.
type ShipperActions interface {
	CreateLoad(ctx context.Context, in commands.LoadInput) (kernel.UUID, error)
	ListLoads(ctx context.Context, status string) ([]queries.ListShipperLoadsQueryResponse, error)
	LoadDetail(ctx context.Context, loadID kernel.UUID) (queries.ShipperLoadDetailResponse, error)
	BidsForLoad(ctx context.Context, loadID kernel.UUID) ([]queries.BidsForLoadQueryResponse, error)
	BidDetail(ctx context.Context, bidID kernel.UUID) (queries.ShipperBidDetailResponse, error)
	AcceptBid(ctx context.Context, bidID kernel.UUID) error
	RateCarrier(ctx context.Context, loadID kernel.UUID, score int) error
}

type shipperActions struct {
	shipperID kernel.UUID
	h         *Handlers
}

func (a shipperActions) CreateLoad(ctx context.Context, in commands.LoadInput) (kernel.UUID, error) {
	loadID := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(loadID, a.shipperID, in)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = a.h.CreateLoad.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}
	return loadID, nil
}

func (a shipperActions) ListLoads(ctx context.Context, status string) ([]queries.ListShipperLoadsQueryResponse, error) {
	query, err := queries.NewListShipperLoadsQuery(a.shipperID, status)
	if err != nil {
		return nil, err
	}
	return a.h.ListShipperLoads.Handle(ctx, query)
}

func (a shipperActions) LoadDetail(ctx context.Context, loadID kernel.UUID) (queries.ShipperLoadDetailResponse, error) {
	query, err := queries.NewShipperLoadDetailQuery(a.shipperID, loadID)
	if err != nil {
		return queries.ShipperLoadDetailResponse{}, err
	}
	return a.h.ShipperLoadDetail.Handle(ctx, query)
}

func (a shipperActions) BidsForLoad(ctx context.Context, loadID kernel.UUID) ([]queries.BidsForLoadQueryResponse, error) {
	query, err := queries.NewBidsForLoadQuery(a.shipperID, loadID)
	if err != nil {
		return nil, err
	}
	return a.h.BidsForLoad.Handle(ctx, query)
}

func (a shipperActions) BidDetail(ctx context.Context, bidID kernel.UUID) (queries.ShipperBidDetailResponse, error) {
	query, err := queries.NewShipperBidDetailQuery(a.shipperID, bidID)
	if err != nil {
		return queries.ShipperBidDetailResponse{}, err
	}
	return a.h.ShipperBidDetail.Handle(ctx, query)
}

func (a shipperActions) AcceptBid(ctx context.Context, bidID kernel.UUID) error {
	cmd, err := commands.NewAcceptBidCommand(a.shipperID, bidID)
	if err != nil {
		return err
	}
	return a.h.AcceptBid.Handle(ctx, cmd)
}

func (a shipperActions) RateCarrier(ctx context.Context, loadID kernel.UUID, score int) error {
	cmd, err := commands.NewRateCarrierCommand(kernel.NewUUID(), a.shipperID, loadID, score)
	if err != nil {
		return err
	}
	return a.h.RateCarrier.Handle(ctx, cmd)
}
