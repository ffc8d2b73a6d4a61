package queries

import (
	"errors"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/guard"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetDashboardStatsQuery retrieves per-status parcel counts scoped to the
// actor's visibility, for the dashboard header of each role's console.
type GetDashboardStatsQuery struct {
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a stats query scoped to the given actor.
func NewGetDashboardStatsQuery(actorID kernel.UUID) (GetDashboardStatsQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetDashboardStatsQuery{}, err
	}

	return GetDashboardStatsQuery{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// ActorID returns the identity the counts are scoped to.
func (q GetDashboardStatsQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetDashboardStatsQueryResponse holds the scoped per-status counts.
type GetDashboardStatsQueryResponse struct {
	Total     int64
	Pending   int64
	PickedUp  int64
	InTransit int64
	Delivered int64
	Cancelled int64
}
