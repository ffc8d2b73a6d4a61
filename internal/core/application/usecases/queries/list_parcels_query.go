package queries

import (
	"errors"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/guard"
)

var (
	ErrListParcelsQueryIsNotConstructed = errors.New(
		"ListParcelsQuery must be created via NewListParcelsQuery constructor",
	)
)

// ListParcelsQuery retrieves the parcels visible to an actor, newest first,
// optionally narrowed to one status. Visibility follows the actor's role:
// customers see parcels they sent, drivers see parcels assigned to them,
// courier admins see their company's parcels, super admins see everything.
type ListParcelsQuery struct {
	actorID      kernel.UUID
	statusFilter *parcel.Status

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a scoped listing query. statusFilter may be nil
// to list all statuses.
func NewListParcelsQuery(actorID kernel.UUID, statusFilter *parcel.Status) (ListParcelsQuery, error) {
	if err := actorID.Validate(); err != nil {
		return ListParcelsQuery{}, err
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	return ListParcelsQuery{
		actorID:      actorID,
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// ActorID returns the identity the listing is scoped to.
func (q ListParcelsQuery) ActorID() kernel.UUID {
	return q.actorID
}

// StatusFilter returns the optional status narrowing, or nil.
func (q ListParcelsQuery) StatusFilter() *parcel.Status {
	return q.statusFilter
}

// ListParcelsQueryResponse is one row of the scoped parcel listing.
type ListParcelsQueryResponse struct {
	ID               kernel.UUID
	TrackingCode     string
	Status           parcel.Status
	PackageType      parcel.PackageType
	RecipientName    string
	RecipientAddress string
	PickupAddress    string
	WeightKg         float64
	DeliveryFee      float64
	CreatedAt        time.Time
}
