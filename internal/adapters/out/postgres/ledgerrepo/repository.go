package ledgerrepo

import (
	"context"
	"errors"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingLedger implements ports.TrackingLedger using GORM. Append is the
// only write path; there is no update or delete.
type GormTrackingLedger struct {
	db *gorm.DB
}

// NewGormTrackingLedger creates a new GORM tracking ledger.
func NewGormTrackingLedger(db *gorm.DB) *GormTrackingLedger {
	return &GormTrackingLedger{db: db}
}

// Append writes one event to the ledger.
func (r *GormTrackingLedger) Append(ctx context.Context, event *parcel.TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// History returns the full event sequence for a parcel, oldest first, with the
// insertion sequence breaking timestamp ties.
func (r *GormTrackingLedger) History(
	ctx context.Context, parcelID kernel.UUID,
) ([]*parcel.TrackingEvent, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("created_at, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*parcel.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// Latest returns the most recent event for a parcel.
func (r *GormTrackingLedger) Latest(
	ctx context.Context, parcelID kernel.UUID,
) (*parcel.TrackingEvent, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingEventDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("created_at DESC, seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking event", parcelID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
