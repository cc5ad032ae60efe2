package queries

import (
	"context"

	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// EligibleVehiclesQueryHandler applies the same vehicle rules PlaceBid does,
// so every vehicle it returns would be accepted in a bid right now.
type EligibleVehiclesQueryHandler struct {
	reader Reader
	clock  ports.Clock
	policy services.EligibilityPolicy
}

func NewEligibleVehiclesQueryHandler(reader Reader, clock ports.Clock) EligibleVehiclesQueryHandler {
	return EligibleVehiclesQueryHandler{reader: reader, clock: clock, policy: services.NewEligibilityPolicy()}
}

func (h EligibleVehiclesQueryHandler) Handle(ctx context.Context, query EligibleVehiclesQuery) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	l, err := h.reader.LoadRepository().Get(ctx, query.LoadID())
	if err != nil {
		return nil, err
	}
	if err = l.CheckOpenForBidding(h.clock.Now()); err != nil {
		return nil, err
	}

	available, err := h.reader.VehicleRepository().ListAvailableByCarrier(ctx, query.CarrierID())
	if err != nil {
		return nil, err
	}
	return newVehicleViews(h.policy.EligibleVehicles(l, available, query.CarrierID())), nil
}
