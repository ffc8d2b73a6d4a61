package queries

import (
	"errors"
	"time"

	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)
)

// TrackParcelQuery retrieves the public tracking view of a parcel by its
// tracking code. Anyone holding the code may track; the response carries no
// addresses, contact details, or money amounts.
type TrackParcelQuery struct {
	code parcel.TrackingCode

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking query from a raw code string. The code
// is normalized to upper case, so lookups are case-insensitive.
func NewTrackParcelQuery(rawCode string) (TrackParcelQuery, error) {
	code, err := parcel.TrackingCodeFromString(rawCode)
	if err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// Code returns the normalized tracking code.
func (q TrackParcelQuery) Code() parcel.TrackingCode {
	return q.code
}

// TrackParcelQueryResponse is the public tracking view: current status plus the
// event trail, nothing the sender would consider private.
type TrackParcelQueryResponse struct {
	TrackingCode string
	Status       parcel.Status
	PackageType  parcel.PackageType
	CreatedAt    time.Time
	DeliveredAt  *time.Time
	Events       []GetParcelHistoryQueryResponse
}
