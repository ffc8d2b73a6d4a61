package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/core/ports"
	"logitrack/internal/pkg/errs"
)

// TransitionParcelCommandHandler applies validated status transitions: it
// resolves the acting actor, consults the access policy, lets the aggregate
// enforce the transition table, and persists the ledger append together with
// the status-guarded parcel update in one transaction.
//
// Two racing transitions on the same parcel cannot both commit: the loser's
// guarded update matches zero rows and the handler reports an invalid
// transition, signalling the caller to re-fetch current status.
type TransitionParcelCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	publisher  ports.ChangePublisher
}

// NewTransitionParcelCommandHandler creates a handler for status transitions.
func NewTransitionParcelCommandHandler(
	uowFactory UoWFactory, publisher ports.ChangePublisher,
) TransitionParcelCommandHandler {
	return TransitionParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		publisher:  publisher,
	}
}

// Handle processes the transition command. The change event is published only
// after the transaction commits, so observers never see a transition that was
// rolled back.
func (h TransitionParcelCommandHandler) Handle(
	ctx context.Context, cmd TransitionParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels := uow.ParcelRepository()
	ledger := uow.TrackingLedger()
	actors := uow.ActorRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	a, err := actors.Get(ctx, cmd.ActorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// An unresolvable actor gets no scope at all.
		return nil, fmt.Errorf("%w: actor %s is unknown", services.ErrAccessDenied, cmd.ActorID())
	}
	if err != nil {
		return nil, err
	}

	if err = h.policy.CanMutate(a, p, cmd.Status()); err != nil {
		return nil, err
	}

	fromStatus := p.Status()
	now := time.Now().UTC()

	event, err := p.Transition(cmd.Status(), cmd.Location(), cmd.Notes(), now)
	if err != nil {
		return nil, err
	}

	if err = ledger.Append(ctx, event); err != nil {
		return nil, err
	}

	if err = parcels.Update(ctx, p, fromStatus); err != nil {
		if errors.Is(err, ports.ErrParcelStatusConflict) {
			return nil, fmt.Errorf("%w: parcel status changed concurrently", parcel.ErrInvalidTransition)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	kind := ports.ChangeStatusUpdated
	if p.Status() == parcel.StatusDelivered {
		kind = ports.ChangeDelivered
	}
	h.publisher.Publish(ports.ParcelChange{
		Kind:         kind,
		ParcelID:     p.ID(),
		TrackingCode: p.TrackingCode().Value(),
		Status:       p.Status(),
		SenderID:     p.SenderID(),
		DriverID:     p.DriverID(),
		CompanyID:    p.CompanyID(),
		OccurredAt:   now,
	})

	return p, nil
}
