package queries

import (
	"errors"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/guard"
)

var (
	ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
		"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
	)
)

// GetParcelHistoryQuery retrieves the full ordered tracking ledger of one
// parcel, gated by the access policy.
type GetParcelHistoryQuery struct {
	parcelID kernel.UUID
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a history query for the given parcel on
// behalf of the given actor.
func NewGetParcelHistoryQuery(parcelID, actorID kernel.UUID) (GetParcelHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelHistoryQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return GetParcelHistoryQuery{}, err
	}

	return GetParcelHistoryQuery{
		parcelID: parcelID,
		actorID:  actorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// ParcelID returns the parcel whose ledger is requested.
func (q GetParcelHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// ActorID returns the identity the read is authorized for.
func (q GetParcelHistoryQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetParcelHistoryQueryResponse is one ledger entry of a parcel's history.
type GetParcelHistoryQueryResponse struct {
	Status    parcel.Status
	Location  string
	Notes     string
	CreatedAt time.Time
}
