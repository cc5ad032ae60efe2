package queries

import (
	"context"

	"freight/internal/pkg/errs"
)

type VehicleDetailQueryHandler struct {
	reader Reader
}

func NewVehicleDetailQueryHandler(reader Reader) VehicleDetailQueryHandler {
	return VehicleDetailQueryHandler{reader: reader}
}

// Handle fails with Forbidden for a vehicle of another carrier.
func (h VehicleDetailQueryHandler) Handle(ctx context.Context, query VehicleDetailQuery) (VehicleView, error) {
	if err := query.Validate(); err != nil {
		return VehicleView{}, err
	}

	v, err := h.reader.VehicleRepository().Get(ctx, query.VehicleID())
	if err != nil {
		return VehicleView{}, err
	}
	if !v.IsOwnedBy(query.CarrierID()) {
		return VehicleView{}, errs.NewForbiddenError("vehicle does not belong to this carrier")
	}
	return newVehicleView(v), nil
}
