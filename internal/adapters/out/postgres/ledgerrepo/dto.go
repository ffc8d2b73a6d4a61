// Package ledgerrepo persists the append-only tracking ledger. Rows are never
// updated or deleted; the auto-incremented sequence column gives a total order
// within equal timestamps.
package ledgerrepo

import (
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// TrackingEventDTO represents one ledger row. Seq is assigned by the database
// on insert.
type TrackingEventDTO struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	ID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ParcelID  uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	Location  string
	Notes     string
	CreatedAt time.Time
}

// TableName specifies the database table name for ledger rows.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation. Seq is
// left zero for the database to assign.
func fromDomain(event *parcel.TrackingEvent) TrackingEventDTO {
	return TrackingEventDTO{
		ID:        event.ID().Bytes(),
		ParcelID:  event.ParcelID().Bytes(),
		Status:    event.Status().String(),
		Location:  event.Location(),
		Notes:     event.Notes(),
		CreatedAt: event.CreatedAt(),
	}
}

// toDomain converts a ledger row back to a tracking event.
func toDomain(dto TrackingEventDTO) (*parcel.TrackingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreTrackingEvent(
		id, parcelID, status, dto.Location, dto.Notes, dto.CreatedAt, dto.Seq)
}
