package services

import (
	"sort"

	"logitrack/internal/core/domain/model/parcel"
)

// RouteSequencer orders a driver's open parcels into the visit sequence:
// express parcels first, then by creation time, oldest first. The sort is
// stable and deterministic; the input slice is not modified.
type RouteSequencer struct{}

// NewRouteSequencer creates a RouteSequencer.
func NewRouteSequencer() RouteSequencer {
	return RouteSequencer{}
}

// Sequence returns a new slice with the parcels in visit order.
func (RouteSequencer) Sequence(open []*parcel.Parcel) []*parcel.Parcel {
	sequenced := make([]*parcel.Parcel, len(open))
	copy(sequenced, open)

	sort.SliceStable(sequenced, func(i, j int) bool {
		pi, pj := sequenced[i], sequenced[j]
		if pi.PackageType().IsExpress() != pj.PackageType().IsExpress() {
			return pi.PackageType().IsExpress()
		}
		return pi.CreatedAt().Before(pj.CreatedAt())
	})

	return sequenced
}
