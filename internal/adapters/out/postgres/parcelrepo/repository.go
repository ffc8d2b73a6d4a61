package parcelrepo

import (
	"context"
	"errors"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/ports"
	"logitrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel, guarded on the status the mutation started
// from. Zero affected rows means a concurrent transition changed the status
// first; the caller fetched the row in this transaction, so absence is not a
// possible cause.
func (r *GormParcelRepository) Update(
	ctx context.Context, aggregate *parcel.Parcel, expectedStatus parcel.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrParcelStatusConflict
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateAssignment persists a driver assignment, guarded on the parcel still
// being unassigned. Zero affected rows means another assignment won the race.
func (r *GormParcelRepository) UpdateAssignment(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND driver_id IS NULL", dto.ID).
		Updates(map[string]any{
			"driver_id":  dto.DriverID,
			"company_id": dto.CompanyID,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return parcel.ErrDriverAlreadyAssigned
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode retrieves a parcel by its tracking code.
func (r *GormParcelRepository) GetByTrackingCode(
	ctx context.Context, code parcel.TrackingCode,
) (*parcel.Parcel, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_code = ?", code.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", code.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// TrackingCodeExists reports whether a tracking code is already taken.
func (r *GormParcelRepository) TrackingCodeExists(
	ctx context.Context, code parcel.TrackingCode,
) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("tracking_code = ?", code.Value()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListOpenByDriver retrieves a driver's parcels that are not in a terminal
// status, oldest first.
func (r *GormParcelRepository) ListOpenByDriver(
	ctx context.Context, driverID kernel.UUID,
) ([]*parcel.Parcel, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND status NOT IN ?", driverID.Bytes(), []string{
			parcel.StatusDelivered.String(),
			parcel.StatusCancelled.String(),
		}).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
