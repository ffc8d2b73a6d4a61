package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/core/ports"
	"logitrack/internal/pkg/errs"
)

// AssignDriverCommandHandler hands a parcel to a driver. The assignment also
// claims the parcel for the driver's company when no company owns it yet, which
// is how courier admins pick up work from the open pool.
//
// The write is guarded on the parcel being unassigned, so exactly one of two
// racing assignments commits.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	companies  ports.CompanyRepository
	policy     services.AccessPolicy
	publisher  ports.ChangePublisher
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory UoWFactory, companies ports.CompanyRepository, publisher ports.ChangePublisher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		companies:  companies,
		policy:     services.NewAccessPolicy(),
		publisher:  publisher,
	}
}

// Handle processes the assignment command. The assigned driver must be an
// active driver affiliated with the assigning admin's company (any company for
// super admins).
func (h AssignDriverCommandHandler) Handle(
	ctx context.Context, cmd AssignDriverCommand,
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
	actors := uow.ActorRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	admin, err := actors.Get(ctx, cmd.ActorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: actor %s is unknown", services.ErrAccessDenied, cmd.ActorID())
	}
	if err != nil {
		return nil, err
	}

	if err = h.policy.CanAssign(admin, p); err != nil {
		return nil, err
	}

	driver, err := actors.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}
	if err = h.validateDriver(admin, driver); err != nil {
		return nil, err
	}

	// A deactivated company may not take on new deliveries.
	co, err := h.companies.Get(ctx, *driver.CompanyID())
	if err != nil {
		return nil, err
	}
	if !co.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"companyId", fmt.Errorf("company %s is deactivated", co.ID()))
	}

	now := time.Now().UTC()
	if err = p.AssignDriver(driver.ID(), *driver.CompanyID(), now); err != nil {
		return nil, err
	}

	if err = parcels.UpdateAssignment(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ports.ParcelChange{
		Kind:         ports.ChangeDriverAssigned,
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

// validateDriver checks that the assignee is an active driver within the
// admin's reach. Super admins may assign drivers of any company.
func (h AssignDriverCommandHandler) validateDriver(admin, driver *actor.Actor) error {
	if driver.Role() != actor.RoleDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"driverId", fmt.Errorf("actor %s is not a driver", driver.ID()))
	}
	if !driver.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"driverId", fmt.Errorf("driver %s is deactivated", driver.ID()))
	}
	if admin.Role() == actor.RoleCourierAdmin && !driver.IsAffiliatedWith(*admin.CompanyID()) {
		return fmt.Errorf("%w: driver %s belongs to another company",
			services.ErrAccessDenied, driver.ID())
	}
	return nil
}
