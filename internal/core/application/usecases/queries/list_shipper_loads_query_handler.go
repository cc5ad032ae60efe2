package queries

import (
	"context"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListShipperLoadsQueryHandler struct {
	db *gorm.DB
}

func NewListShipperLoadsQueryHandler(db *gorm.DB) ListShipperLoadsQueryHandler {
	return ListShipperLoadsQueryHandler{db: db}
}

func (h ListShipperLoadsQueryHandler) Handle(
	ctx context.Context,
	query ListShipperLoadsQuery,
) ([]ListShipperLoadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			l.id,
			l.material,
			l.pickup_city,
			l.delivery_city,
			l.budget_price,
			l.status,
			l.bidding_deadline,
			l.pickup_date,
			l.created_at,
			(SELECT COUNT(*) FROM bids b WHERE b.load_id = l.id AND b.status = ?) AS bid_count,
			EXISTS (SELECT 1 FROM carrier_ratings r WHERE r.load_id = l.id) AS is_rated
		FROM loads l
		WHERE l.shipper_id = ?`
	args := []any{bid.Pending.String(), query.ShipperID().Bytes()}
	if query.Status() != load.Unknown {
		sql += ` AND l.status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY l.created_at DESC, l.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make([]ListShipperLoadsQueryResponse, 0)
	for rows.Next() {
		var resp ListShipperLoadsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Material,
			&resp.PickupCity,
			&resp.DeliveryCity,
			&resp.BudgetPrice,
			&resp.Status,
			&resp.BiddingDeadline,
			&resp.PickupDate,
			&resp.CreatedAt,
			&resp.BidCount,
			&resp.IsRated,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		loads = append(loads, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
