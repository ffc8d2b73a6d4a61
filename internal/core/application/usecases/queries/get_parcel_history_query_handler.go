package queries

import (
	"context"
	"errors"
	"fmt"

	"logitrack/internal/core/domain/services"
	"logitrack/internal/core/ports"
	"logitrack/internal/pkg/errs"
)

// GetParcelHistoryQueryHandler returns a parcel's ordered tracking ledger. It
// goes through the repositories rather than raw SQL because visibility of a
// single parcel is an access policy decision, not a row scope.
type GetParcelHistoryQueryHandler struct {
	parcels ports.ParcelRepository
	actors  ports.ActorRepository
	ledger  ports.TrackingLedger
	policy  services.AccessPolicy
}

// NewGetParcelHistoryQueryHandler creates a handler for ledger history reads.
func NewGetParcelHistoryQueryHandler(
	parcels ports.ParcelRepository,
	actors ports.ActorRepository,
	ledger ports.TrackingLedger,
) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{
		parcels: parcels,
		actors:  actors,
		ledger:  ledger,
		policy:  services.NewAccessPolicy(),
	}
}

// Handle executes the history read. Events come back oldest first, in ledger
// order.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p, err := h.parcels.Get(ctx, query.ParcelID())
	if err != nil {
		return nil, err
	}

	a, err := h.actors.Get(ctx, query.ActorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: actor %s is unknown", services.ErrAccessDenied, query.ActorID())
	}
	if err != nil {
		return nil, err
	}

	if err = h.policy.CanRead(a, p); err != nil {
		return nil, err
	}

	events, err := h.ledger.History(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	history := make([]GetParcelHistoryQueryResponse, 0, len(events))
	for _, event := range events {
		history = append(history, GetParcelHistoryQueryResponse{
			Status:    event.Status(),
			Location:  event.Location(),
			Notes:     event.Notes(),
			CreatedAt: event.CreatedAt(),
		})
	}

	return history, nil
}
