package queries

import (
	"context"
)

type ListVehiclesQueryHandler struct {
	reader Reader
}

func NewListVehiclesQueryHandler(reader Reader) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{reader: reader}
}

// Handle returns the fleet newest first.
func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles, err := h.reader.VehicleRepository().ListByCarrier(ctx, query.CarrierID())
	if err != nil {
		return nil, err
	}
	return newVehicleViews(vehicles), nil
}
