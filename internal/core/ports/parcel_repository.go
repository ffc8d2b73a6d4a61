package ports

import (
	"context"
	"errors"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
)

// ErrParcelStatusConflict is returned by Update when the parcel's stored status
// no longer matches the status the transition started from. A concurrent
// transition won the race; the caller should surface an invalid-transition
// failure rather than retry blindly.
var ErrParcelStatusConflict = errors.New("parcel status changed concurrently")

// ParcelRepository defines the persistence contract for parcel aggregates.
// Mutations on the same parcel are serialized through status-guarded updates so
// that two racing transitions can never both commit.
type ParcelRepository interface {
	// Add persists a new parcel aggregate.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel, guarded on the status the
	// transition started from. Returns ErrParcelStatusConflict when the stored
	// status differs, which means a concurrent transition committed first.
	Update(ctx context.Context, aggregate *parcel.Parcel, expectedStatus parcel.Status) error

	// UpdateAssignment persists a driver assignment, guarded on the parcel
	// being unassigned. Returns parcel.ErrDriverAlreadyAssigned when another
	// assignment committed first.
	UpdateAssignment(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by its human-facing tracking code.
	GetByTrackingCode(ctx context.Context, code parcel.TrackingCode) (*parcel.Parcel, error)

	// TrackingCodeExists reports whether a tracking code is already taken.
	// Used to regenerate codes on collision instead of failing creation.
	TrackingCodeExists(ctx context.Context, code parcel.TrackingCode) (bool, error)

	// ListOpenByDriver retrieves the driver's parcels that are not in a
	// terminal status, for route sequencing.
	ListOpenByDriver(ctx context.Context, driverID kernel.UUID) ([]*parcel.Parcel, error)
}
