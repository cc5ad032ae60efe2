package carrierrepo

import (
	"context"
	"errors"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.AggregateRoot)
}

func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add names the clashing profile field when email, number or GST is taken.
// The unique indexes still catch a concurrent registration.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	p := aggregate.Profile()
	var existing CarrierDTO
	err := r.db.WithContext(ctx).
		Where("contact_email = ? OR contact_number = ? OR gst_number = ?", p.Email(), p.ContactNumber(), p.GSTNumber()).
		Take(&existing).Error
	switch {
	case err == nil:
		return pgtypes.ProfileConflict(existing.Profile, p)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	dto := fromDomain(aggregate)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgtypes.Conflict(err, "carrier", p.Email())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&dto).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgtypes.NotFound(gorm.ErrRecordNotFound, "carrier", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormCarrierRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormCarrierRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgtypes.NotFound(err, "carrier", id)
	}
	return toDomain(dto)
}
