package loadrepo

import (
	"context"
	"time"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.AggregateRoot)
}

func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgtypes.Conflict(err, "load", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&dto).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgtypes.NotFound(gorm.ErrRecordNotFound, "load", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate holds a row lock on the load until the transaction ends.
func (r *GormLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormLoadRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgtypes.NotFound(err, "load", id)
	}
	return toDomain(dto)
}

// ListOpenForBidding excludes loads the carrier already bid on or declined.
//
// Example:
//
//	feed, err := repo.ListOpenForBidding(ctx, carrierID, time.Now())
//	if err != nil {
//		return fmt.Errorf("failed to list eligible loads: %w", err)
//	}
func (r *GormLoadRepository) ListOpenForBidding(
	ctx context.Context,
	carrierID kernel.UUID,
	now time.Time,
) ([]*load.Load, error) {
	var dtos []LoadDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND bidding_deadline > ?", load.Created.String(), now).
		Where(`NOT EXISTS (
			SELECT 1 FROM carrier_load_interactions i
			WHERE i.load_id = loads.id AND i.carrier_id = ?
		)`, carrierID.Bytes()).
		Order("bidding_deadline, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}
	return loads, nil
}
