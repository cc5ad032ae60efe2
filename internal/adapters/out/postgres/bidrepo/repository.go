package bidrepo

import (
	"context"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormBidRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.AggregateRoot)
}

func NewGormBidRepository(db *gorm.DB, tracker aggregateTracker) *GormBidRepository {
	return &GormBidRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormBidRepository) Add(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgtypes.Conflict(err, "bid", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormBidRepository) Update(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&dto).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgtypes.NotFound(gorm.ErrRecordNotFound, "bid", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormBidRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormBidRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*bid.Bid, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BidDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgtypes.NotFound(err, "bid", id)
	}
	return toDomain(dto)
}

// ListPendingByLoadForUpdate locks in id order, after the caller has locked the load.
func (r *GormBidRepository) ListPendingByLoadForUpdate(ctx context.Context, loadID kernel.UUID) ([]*bid.Bid, error) {
	var dtos []BidDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("load_id = ? AND status = ?", loadID.Bytes(), bid.Pending.String()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	bids := make([]*bid.Bid, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, nil
}
