package queries

import (
	"context"
	"errors"
	"fmt"

	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/core/ports"
	"logitrack/internal/pkg/errs"
)

// GetDriverRouteQueryHandler loads a driver's open parcels and sequences them
// into delivery order with the route sequencer.
type GetDriverRouteQueryHandler struct {
	parcels   ports.ParcelRepository
	actors    ports.ActorRepository
	sequencer services.RouteSequencer
}

// NewGetDriverRouteQueryHandler creates a handler for driver route reads.
func NewGetDriverRouteQueryHandler(
	parcels ports.ParcelRepository, actors ports.ActorRepository,
) GetDriverRouteQueryHandler {
	return GetDriverRouteQueryHandler{
		parcels:   parcels,
		actors:    actors,
		sequencer: services.NewRouteSequencer(),
	}
}

// Handle executes the route read. An empty route is a normal result for a
// driver with no open deliveries.
func (h GetDriverRouteQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRouteQuery,
) ([]GetDriverRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requester, err := h.actors.Get(ctx, query.ActorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: actor %s is unknown", services.ErrAccessDenied, query.ActorID())
	}
	if err != nil {
		return nil, err
	}

	if err = h.authorizeRouteRead(ctx, requester, query.DriverID()); err != nil {
		return nil, err
	}

	open, err := h.parcels.ListOpenByDriver(ctx, query.DriverID())
	if err != nil {
		return nil, err
	}

	sequenced := h.sequencer.Sequence(open)

	route := make([]GetDriverRouteQueryResponse, 0, len(sequenced))
	for i, p := range sequenced {
		route = append(route, GetDriverRouteQueryResponse{
			Stop:             i + 1,
			ParcelID:         p.ID(),
			TrackingCode:     p.TrackingCode().Value(),
			Status:           p.Status(),
			PackageType:      p.PackageType(),
			Express:          p.PackageType().IsExpress(),
			PickupAddress:    p.PickupAddress(),
			RecipientName:    p.Recipient().Name(),
			RecipientAddress: p.Recipient().Address(),
			CreatedAt:        p.CreatedAt(),
		})
	}

	return route, nil
}

// authorizeRouteRead allows drivers to read their own route, courier admins the
// routes of their company's drivers, and super admins any route.
func (h GetDriverRouteQueryHandler) authorizeRouteRead(
	ctx context.Context, requester *actor.Actor, driverID kernel.UUID,
) error {
	switch requester.Role() {
	case actor.RoleSuperAdmin:
		return nil
	case actor.RoleDriver:
		if requester.ID().IsEqual(driverID) {
			return nil
		}
	case actor.RoleCourierAdmin:
		driver, err := h.actors.Get(ctx, driverID)
		if err != nil {
			return err
		}
		if driver.Role() == actor.RoleDriver && driver.IsAffiliatedWith(*requester.CompanyID()) {
			return nil
		}
	}

	return fmt.Errorf("%w: actor %s may not read the route of driver %s",
		services.ErrAccessDenied, requester.ID(), driverID)
}
