package vehiclerepo

import (
	"bytes"
	"context"
	"slices"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.AggregateRoot)
}

func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add reports a taken vehicle number as a conflict.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgtypes.Conflict(err, "vehicleNumber", aggregate.Number())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&dto).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgtypes.Conflict(result.Error, "vehicleNumber", aggregate.Number())
	}
	if result.RowsAffected == 0 {
		return pgtypes.NotFound(gorm.ErrRecordNotFound, "vehicle", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgtypes.NotFound(gorm.ErrRecordNotFound, "vehicle", id)
	}
	return nil
}

func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormVehicleRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgtypes.NotFound(err, "vehicle", id)
	}
	return toDomain(dto)
}

// GetManyForUpdate locks in id order so two transactions locking overlapping
// sets queue on the first shared row.
func (r *GormVehicleRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*vehicle.Vehicle, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}
	slices.SortFunc(raw, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	raw = slices.Compact(raw)
	if len(raw) == 0 {
		return []*vehicle.Vehicle{}, nil
	}

	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	if len(dtos) != len(raw) {
		found := make(map[uuid.UUID]struct{}, len(dtos))
		for _, dto := range dtos {
			found[dto.ID] = struct{}{}
		}
		for _, id := range raw {
			if _, ok := found[id]; !ok {
				missing, err := kernel.UUIDFromBytes(id[:])
				if err != nil {
					return nil, err
				}
				return nil, pgtypes.NotFound(gorm.ErrRecordNotFound, "vehicle", missing)
			}
		}
	}
	return toDomainList(dtos)
}

func (r *GormVehicleRepository) ListByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*vehicle.Vehicle, error) {
	return r.list(ctx, r.db.Where("carrier_id = ?", carrierID.Bytes()))
}

func (r *GormVehicleRepository) ListAvailableByCarrier(
	ctx context.Context,
	carrierID kernel.UUID,
) ([]*vehicle.Vehicle, error) {
	return r.list(ctx, r.db.Where("carrier_id = ? AND status = ?", carrierID.Bytes(), vehicle.Available.String()))
}

func (r *GormVehicleRepository) list(ctx context.Context, db *gorm.DB) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := db.WithContext(ctx).Order("created_at DESC, id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// HasHistory reports whether any bid or load references the vehicle.
func (r *GormVehicleRepository) HasHistory(ctx context.Context, id kernel.UUID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM bids WHERE vehicle_id = ?)
			OR EXISTS (SELECT 1 FROM loads WHERE assigned_vehicle_id = ?)
	`, id.Bytes(), id.Bytes()).Scan(&exists).Error
	return exists, err
}
