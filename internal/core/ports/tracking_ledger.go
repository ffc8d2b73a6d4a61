package ports

import (
	"context"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
)

// TrackingLedger is the append-only log of tracking events, keyed by parcel id
// and ordered by creation timestamp with the insertion sequence number breaking
// ties. Append is the only mutator; entries are never updated or deleted.
//
// The ledger append and the owning parcel's status update must commit in the
// same transaction, which is why the ledger is exposed through the unit of work
// alongside ParcelRepository.
type TrackingLedger interface {
	// Append writes one event to the ledger.
	Append(ctx context.Context, event *parcel.TrackingEvent) error

	// History returns the full ordered event sequence for a parcel. Each call
	// re-reads current state.
	History(ctx context.Context, parcelID kernel.UUID) ([]*parcel.TrackingEvent, error)

	// Latest returns the most recent event for a parcel, or an
	// errs.ObjectNotFoundError when the parcel has no events.
	Latest(ctx context.Context, parcelID kernel.UUID) (*parcel.TrackingEvent, error)
}
