package ports

import (
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
)

// ChangeKind classifies a parcel change for notification purposes.
type ChangeKind string

const (
	// ChangeStatusUpdated is emitted for every tracking ledger append.
	ChangeStatusUpdated ChangeKind = "package_update"

	// ChangeDriverAssigned is emitted when a courier admin assigns a driver.
	ChangeDriverAssigned ChangeKind = "delivery_assigned"

	// ChangeDelivered is emitted for the terminal delivered transition.
	ChangeDelivered ChangeKind = "delivery_completed"
)

// ParcelChange carries everything the notification hub needs to compute the
// relevance set of a committed change: the new status plus the parcel's sender,
// assigned driver, and owning courier company.
type ParcelChange struct {
	Kind         ChangeKind
	ParcelID     kernel.UUID
	TrackingCode string
	Status       parcel.Status
	SenderID     kernel.UUID
	DriverID     *kernel.UUID
	CompanyID    *kernel.UUID
	OccurredAt   time.Time
}

// ChangePublisher receives parcel changes after their transaction commits.
// Publish must not block the mutating caller; delivery to subscribers is
// asynchronous and best-effort.
type ChangePublisher interface {
	Publish(change ParcelChange)
}
