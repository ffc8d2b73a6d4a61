package queries

import (
	"context"

	"logitrack/internal/core/ports"
)

// TrackParcelQueryHandler serves the public tracking endpoint. Possession of
// the tracking code is the authorization; the response is stripped down
// accordingly.
type TrackParcelQueryHandler struct {
	parcels ports.ParcelRepository
	ledger  ports.TrackingLedger
}

// NewTrackParcelQueryHandler creates a handler for public tracking lookups.
func NewTrackParcelQueryHandler(
	parcels ports.ParcelRepository, ledger ports.TrackingLedger,
) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{parcels: parcels, ledger: ledger}
}

// Handle executes the lookup. An unknown code surfaces as an
// errs.ObjectNotFoundError from the repository.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	p, err := h.parcels.GetByTrackingCode(ctx, query.Code())
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	events, err := h.ledger.History(ctx, p.ID())
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	trail := make([]GetParcelHistoryQueryResponse, 0, len(events))
	for _, event := range events {
		trail = append(trail, GetParcelHistoryQueryResponse{
			Status:    event.Status(),
			Location:  event.Location(),
			Notes:     event.Notes(),
			CreatedAt: event.CreatedAt(),
		})
	}

	return TrackParcelQueryResponse{
		TrackingCode: p.TrackingCode().Value(),
		Status:       p.Status(),
		PackageType:  p.PackageType(),
		CreatedAt:    p.CreatedAt(),
		DeliveredAt:  p.DeliveredAt(),
		Events:       trail,
	}, nil
}
