package queries

import (
	"errors"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/guard"
)

var (
	ErrGetDriverRouteQueryIsNotConstructed = errors.New(
		"GetDriverRouteQuery must be created via NewGetDriverRouteQuery constructor",
	)
)

// GetDriverRouteQuery retrieves a driver's open parcels as an ordered route:
// express deliveries first, then oldest first within each tier. Drivers may
// request their own route; courier admins their drivers'; super admins any.
type GetDriverRouteQuery struct {
	driverID kernel.UUID
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverRouteQuery creates a route query for the given driver on behalf
// of the given actor.
func NewGetDriverRouteQuery(driverID, actorID kernel.UUID) (GetDriverRouteQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverRouteQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return GetDriverRouteQuery{}, err
	}

	return GetDriverRouteQuery{
		driverID: driverID,
		actorID:  actorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRouteQueryIsNotConstructed)
}

// DriverID returns the driver whose route is requested.
func (q GetDriverRouteQuery) DriverID() kernel.UUID {
	return q.driverID
}

// ActorID returns the identity the read is authorized for.
func (q GetDriverRouteQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetDriverRouteQueryResponse is one stop of the sequenced route. Stop numbers
// start at 1.
type GetDriverRouteQueryResponse struct {
	Stop             int
	ParcelID         kernel.UUID
	TrackingCode     string
	Status           parcel.Status
	PackageType      parcel.PackageType
	Express          bool
	PickupAddress    string
	RecipientName    string
	RecipientAddress string
	CreatedAt        time.Time
}
