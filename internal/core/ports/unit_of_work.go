package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. The ledger append and
// the parcel status update of a transition must both go through the same unit
// of work so that no observer can see one without the other.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current transaction.
	ParcelRepository() ParcelRepository

	// TrackingLedger returns a TrackingLedger bound to the current transaction.
	TrackingLedger() TrackingLedger

	// ActorRepository returns an ActorRepository bound to the current transaction.
	ActorRepository() ActorRepository
}
