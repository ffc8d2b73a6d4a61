// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit change publication.
package commands

import (
	"context"

	"logitrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// The ledger append and the parcel update of a transition share one unit of
// work so both commit or neither does.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// LedgerFactory provides access to the tracking ledger within a transaction.
	LedgerFactory interface {
		TrackingLedger() ports.TrackingLedger
	}

	// ActorRepoFactory provides access to the actor repository within a transaction.
	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	// ParcelUoW manages transactions for parcel-and-ledger operations.
	// Used by commands that do not resolve actors (creation).
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		LedgerFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UoW manages transactions spanning parcels, the ledger, and actors.
	UoW interface {
		TxManager
		ParcelRepoFactory
		LedgerFactory
		ActorRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
