package queries

import (
	"context"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BidsForLoadQueryHandler orders bids cheapest first and, at equal price,
// by the carrier with the better rating.
type BidsForLoadQueryHandler struct {
	reader Reader
	db     *gorm.DB
	policy services.VisibilityPolicy
}

func NewBidsForLoadQueryHandler(reader Reader, db *gorm.DB) BidsForLoadQueryHandler {
	return BidsForLoadQueryHandler{reader: reader, db: db, policy: services.NewVisibilityPolicy()}
}

func (h BidsForLoadQueryHandler) Handle(ctx context.Context, query BidsForLoadQuery) ([]BidsForLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	l, err := h.reader.LoadRepository().Get(ctx, query.LoadID())
	if err != nil {
		return nil, err
	}
	if err = h.policy.CheckShipperBids(l, query.ShipperID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.carrier_id,
			b.vehicle_id,
			b.bid_amount,
			b.estimated_transit_time_hours,
			b.created_at,
			c.company_name,
			ROUND(COALESCE(c.rating_total::numeric / NULLIF(c.rating_count, 0), 0), 2) AS carrier_rating,
			c.rating_count,
			c.total_trips,
			v.vehicle_number,
			v.vehicle_type
		FROM bids b
		JOIN carriers c ON c.id = b.carrier_id
		JOIN vehicles v ON v.id = b.vehicle_id
		WHERE b.load_id = ? AND b.status = ?
		ORDER BY b.bid_amount ASC, carrier_rating DESC, b.created_at
	`, l.ID().Bytes(), bid.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]BidsForLoadQueryResponse, 0)
	for rows.Next() {
		var resp BidsForLoadQueryResponse
		var id, carrierID, vehicleID uuid.UUID

		err = rows.Scan(
			&id,
			&carrierID,
			&vehicleID,
			&resp.BidAmount,
			&resp.EstimatedTransitTimeHours,
			&resp.CreatedAt,
			&resp.CarrierCompany,
			&resp.CarrierRating,
			&resp.CarrierRatingCount,
			&resp.CarrierTotalTrips,
			&resp.VehicleNumber,
			&resp.VehicleType,
		)
		if err != nil {
			return nil, err
		}

		if resp.BidID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CarrierID, err = kernel.UUIDFromBytes(carrierID[:]); err != nil {
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
