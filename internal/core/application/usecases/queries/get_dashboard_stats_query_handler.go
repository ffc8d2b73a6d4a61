package queries

import (
	"context"

	"logitrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler counts parcels per status within the actor's
// scope with a single grouped query.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the count. An actor without a resolvable scope gets all-zero
// counts.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var stats GetDashboardStatsQueryResponse

	scope, args, visible, err := resolveParcelScope(ctx, h.db, query.ActorID())
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	if !visible {
		return stats, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM parcels
		WHERE `+scope+`
		GROUP BY status
	`, args...).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var statusStr string
		var count int64

		if err = rows.Scan(&statusStr, &count); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}

		status, statusErr := parcel.StatusFromString(statusStr)
		if statusErr != nil {
			return GetDashboardStatsQueryResponse{}, statusErr
		}

		stats.Total += count
		switch status {
		case parcel.StatusPending:
			stats.Pending = count
		case parcel.StatusPickedUp:
			stats.PickedUp = count
		case parcel.StatusInTransit:
			stats.InTransit = count
		case parcel.StatusDelivered:
			stats.Delivered = count
		case parcel.StatusCancelled:
			stats.Cancelled = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return stats, nil
}
