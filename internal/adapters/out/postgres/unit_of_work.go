// Package postgres provides the GORM-based unit of work tying the parcel
// store, the tracking ledger, and the actor directory to one database
// transaction. A transition's ledger append and status update go through the
// same unit of work so both commit or neither does.
package postgres

import (
	"context"

	"logitrack/internal/adapters/out/postgres/actorrepo"
	"logitrack/internal/adapters/out/postgres/ledgerrepo"
	"logitrack/internal/adapters/out/postgres/parcelrepo"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of work, kept
// for post-commit processing such as change publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances on a shared GORM
// connection. Each business operation gets a fresh instance so concurrent
// operations never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork. Repositories obtained before Begin resolve
// to the base connection, which is how read-only callers reuse the same
// repository implementations without a transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the repositories
// it exposes and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin on an instance with an open
// transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. The instance cannot be reused afterwards.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. The instance cannot be reused afterwards.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ParcelRepository returns a parcel repository bound to the current
// transaction, or to the base connection when no transaction is open.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// TrackingLedger returns a tracking ledger bound to the current transaction,
// or to the base connection when no transaction is open.
func (uow *GormUnitOfWork) TrackingLedger() ports.TrackingLedger {
	return ledgerrepo.NewGormTrackingLedger(uow.conn())
}

// ActorRepository returns an actor repository bound to the current
// transaction, or to the base connection when no transaction is open.
func (uow *GormUnitOfWork) ActorRepository() ports.ActorRepository {
	return actorrepo.NewGormActorRepository(uow.conn())
}

// TrackAggregate registers a modified aggregate for post-transaction
// processing. Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
