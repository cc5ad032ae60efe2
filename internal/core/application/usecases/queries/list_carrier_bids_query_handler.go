package queries

import (
	"context"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCarrierBidsQueryHandler struct {
	db *gorm.DB
}

func NewListCarrierBidsQueryHandler(db *gorm.DB) ListCarrierBidsQueryHandler {
	return ListCarrierBidsQueryHandler{db: db}
}

func (h ListCarrierBidsQueryHandler) Handle(
	ctx context.Context,
	query ListCarrierBidsQuery,
) ([]ListCarrierBidsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			b.id,
			b.load_id,
			b.vehicle_id,
			b.bid_amount,
			b.estimated_transit_time_hours,
			b.status,
			b.created_at,
			l.material,
			l.pickup_city,
			l.delivery_city,
			l.pickup_date,
			l.status,
			s.company_name,
			v.vehicle_number,
			v.vehicle_type
		FROM bids b
		JOIN loads l ON l.id = b.load_id
		JOIN shippers s ON s.id = l.shipper_id
		JOIN vehicles v ON v.id = b.vehicle_id
		WHERE b.carrier_id = ?`
	args := []any{query.CarrierID().Bytes()}
	if query.Status() != bid.UnknownStatus {
		sql += ` AND b.status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY b.created_at DESC, b.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]ListCarrierBidsQueryResponse, 0)
	for rows.Next() {
		var resp ListCarrierBidsQueryResponse
		var id, loadID, vehicleID uuid.UUID

		err = rows.Scan(
			&id,
			&loadID,
			&vehicleID,
			&resp.BidAmount,
			&resp.EstimatedTransitTimeHours,
			&resp.Status,
			&resp.CreatedAt,
			&resp.Material,
			&resp.PickupCity,
			&resp.DeliveryCity,
			&resp.PickupDate,
			&resp.LoadStatus,
			&resp.ShipperCompany,
			&resp.VehicleNumber,
			&resp.VehicleType,
		)
		if err != nil {
			return nil, err
		}

		if resp.BidID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.LoadID, err = kernel.UUIDFromBytes(loadID[:]); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		bids = append(bids, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
