package roles

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// BidRequest is a carrier's offer on a load.
type BidRequest struct {
	LoadID         kernel.UUID
	VehicleID      kernel.UUID
	Amount         decimal.Decimal
	EstimatedHours int
}

// CarrierActions are the operations a carrier performs on loads and bids.
type CarrierActions interface {
	EligibleLoads(ctx context.Context) ([]queries.LoadView, error)
	LoadDetail(ctx context.Context, loadID kernel.UUID) (queries.LoadDetailResponse, error)
	MarkNotInterested(ctx context.Context, loadID kernel.UUID) error
	EligibleVehicles(ctx context.Context, loadID kernel.UUID) ([]queries.VehicleView, error)
	PlaceBid(ctx context.Context, req BidRequest) (kernel.UUID, error)
	ListBids(ctx context.Context, status string) ([]queries.ListCarrierBidsQueryResponse, error)
	BidDetail(ctx context.Context, bidID kernel.UUID) (queries.CarrierBidDetailResponse, error)
	StartTransit(ctx context.Context, loadID kernel.UUID) error
	MarkDelivered(ctx context.Context, loadID kernel.UUID) error
}

type carrierActions struct {
	carrierID kernel.UUID
	h         *Handlers
}

func (a carrierActions) EligibleLoads(ctx context.Context) ([]queries.LoadView, error) {
	query, err := queries.NewEligibleLoadsQuery(a.carrierID)
	if err != nil {
		return nil, err
	}
	return a.h.EligibleLoads.Handle(ctx, query)
}

func (a carrierActions) LoadDetail(ctx context.Context, loadID kernel.UUID) (queries.LoadDetailResponse, error) {
	query, err := queries.NewLoadDetailQuery(a.carrierID, loadID)
	if err != nil {
		return queries.LoadDetailResponse{}, err
	}
	return a.h.LoadDetail.Handle(ctx, query)
}

func (a carrierActions) MarkNotInterested(ctx context.Context, loadID kernel.UUID) error {
	cmd, err := commands.NewMarkNotInterestedCommand(a.carrierID, loadID)
	if err != nil {
		return err
	}
	return a.h.MarkNotInterested.Handle(ctx, cmd)
}

func (a carrierActions) EligibleVehicles(ctx context.Context, loadID kernel.UUID) ([]queries.VehicleView, error) {
	query, err := queries.NewEligibleVehiclesQuery(a.carrierID, loadID)
	if err != nil {
		return nil, err
	}
	return a.h.EligibleVehicles.Handle(ctx, query)
}

func (a carrierActions) PlaceBid(ctx context.Context, req BidRequest) (kernel.UUID, error) {
	bidID := kernel.NewUUID()
	cmd, err := commands.NewPlaceBidCommand(bidID, a.carrierID, req.LoadID, req.VehicleID, req.Amount, req.EstimatedHours)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = a.h.PlaceBid.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}
	return bidID, nil
}

func (a carrierActions) ListBids(ctx context.Context, status string) ([]queries.ListCarrierBidsQueryResponse, error) {
	query, err := queries.NewListCarrierBidsQuery(a.carrierID, status)
	if err != nil {
		return nil, err
	}
	return a.h.ListCarrierBids.Handle(ctx, query)
}

func (a carrierActions) BidDetail(ctx context.Context, bidID kernel.UUID) (queries.CarrierBidDetailResponse, error) {
	query, err := queries.NewCarrierBidDetailQuery(a.carrierID, bidID)
	if err != nil {
		return queries.CarrierBidDetailResponse{}, err
	}
	return a.h.CarrierBidDetail.Handle(ctx, query)
}

func (a carrierActions) StartTransit(ctx context.Context, loadID kernel.UUID) error {
	cmd, err := commands.NewStartTransitCommand(a.carrierID, loadID)
	if err != nil {
		return err
	}
	return a.h.StartTransit.Handle(ctx, cmd)
}

func (a carrierActions) MarkDelivered(ctx context.Context, loadID kernel.UUID) error {
	cmd, err := commands.NewMarkDeliveredCommand(a.carrierID, loadID)
	if err != nil {
		return err
	}
	return a.h.MarkDelivered.Handle(ctx, cmd)
}
