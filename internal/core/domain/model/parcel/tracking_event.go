package parcel

import (
	"errors"
	"time"

	"logitrack/internal/core/domain/model/kernel"
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
// created through NewTrackingEvent or RestoreTrackingEvent.
var ErrTrackingEventIsNotConstructed = errors.New(
	"TrackingEvent must be created via NewTrackingEvent or RestoreTrackingEvent")

// TrackingEvent is one immutable entry of a parcel's tracking ledger. Events are
// created exactly once per transition (including the implicit pending event at
// parcel creation) and are never updated or deleted. The ledger orders events by
// creation timestamp with the insertion sequence number breaking ties.
type TrackingEvent struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	status    Status
	location  string
	notes     string
	createdAt time.Time

	// seq is the ledger insertion sequence number. It is zero until the ledger
	// assigns it on append.
	seq int64

	isConstructed bool
}

// NewTrackingEvent creates a ledger entry for a parcel transition.
// Location and notes are free text and may be empty.
func NewTrackingEvent(
	parcelID kernel.UUID, status Status, location, notes string, createdAt time.Time,
) (*TrackingEvent, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &TrackingEvent{
		id:            kernel.NewUUID(),
		parcelID:      parcelID,
		status:        status,
		location:      location,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreTrackingEvent reconstructs a ledger entry from persistence.
func RestoreTrackingEvent(
	id, parcelID kernel.UUID, status Status, location, notes string, createdAt time.Time, seq int64,
) (*TrackingEvent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &TrackingEvent{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		location:      location,
		notes:         notes,
		createdAt:     createdAt,
		seq:           seq,
		isConstructed: true,
	}, nil
}

// Validate ensures the event was created through a constructor.
func (e *TrackingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *TrackingEvent) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identifier of the owning parcel.
func (e *TrackingEvent) ParcelID() kernel.UUID {
	return e.parcelID
}

// Status returns the parcel status recorded at this step.
func (e *TrackingEvent) Status() Status {
	return e.status
}

// Location returns the free-text location of the event.
func (e *TrackingEvent) Location() string {
	return e.location
}

// Notes returns the free-text notes of the event.
func (e *TrackingEvent) Notes() string {
	return e.notes
}

// CreatedAt returns the event timestamp.
func (e *TrackingEvent) CreatedAt() time.Time {
	return e.createdAt
}

// Seq returns the insertion sequence number assigned by the ledger, or zero if
// the event has not been appended yet.
func (e *TrackingEvent) Seq() int64 {
	return e.seq
}
