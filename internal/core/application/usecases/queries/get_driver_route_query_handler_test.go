package queries_test

import (
	"context"
	"testing"
	"time"

	"logitrack/internal/core/application/usecases/queries"
	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDriverRouteQueryHandler_Handle_DriverReadsOwnRoute(t *testing.T) {
	ctx := context.Background()
	companyID := kernel.NewUUID()
	driver := fixtureActor(t, actor.RoleDriver, &companyID)
	base := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	standard := fixtureParcel(t, kernel.NewUUID(), parcel.TypeStandard, base)
	express := fixtureParcel(t, kernel.NewUUID(), parcel.TypeExpress, base.Add(time.Hour))

	parcels := new(MockParcelRepository)
	actors := new(MockActorRepository)
	actors.On("Get", ctx, driver.ID()).Return(driver, nil).Once()
	parcels.On("ListOpenByDriver", ctx, driver.ID()).
		Return([]*parcel.Parcel{standard, express}, nil).Once()

	query, err := queries.NewGetDriverRouteQuery(driver.ID(), driver.ID())
	require.NoError(t, err)

	h := queries.NewGetDriverRouteQueryHandler(parcels, actors)
	route, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, route, 2)

	// Express first even though it was created later.
	assert.Equal(t, 1, route[0].Stop)
	assert.True(t, route[0].ParcelID.IsEqual(express.ID()))
	assert.True(t, route[0].Express)
	assert.Equal(t, 2, route[1].Stop)
	assert.True(t, route[1].ParcelID.IsEqual(standard.ID()))
	assert.False(t, route[1].Express)
	assert.Equal(t, "1 Delivery Ln", route[0].RecipientAddress)
	parcels.AssertExpectations(t)
	actors.AssertExpectations(t)
}

func TestGetDriverRouteQueryHandler_Handle_EmptyRoute(t *testing.T) {
	ctx := context.Background()
	companyID := kernel.NewUUID()
	driver := fixtureActor(t, actor.RoleDriver, &companyID)

	parcels := new(MockParcelRepository)
	actors := new(MockActorRepository)
	actors.On("Get", ctx, driver.ID()).Return(driver, nil).Once()
	parcels.On("ListOpenByDriver", ctx, driver.ID()).Return([]*parcel.Parcel{}, nil).Once()

	query, err := queries.NewGetDriverRouteQuery(driver.ID(), driver.ID())
	require.NoError(t, err)

	h := queries.NewGetDriverRouteQueryHandler(parcels, actors)
	route, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Empty(t, route)
}

func TestGetDriverRouteQueryHandler_Handle_DriverCannotReadOthersRoute(t *testing.T) {
	ctx := context.Background()
	companyID := kernel.NewUUID()
	requester := fixtureActor(t, actor.RoleDriver, &companyID)
	otherDriverID := kernel.NewUUID()

	parcels := new(MockParcelRepository)
	actors := new(MockActorRepository)
	actors.On("Get", ctx, requester.ID()).Return(requester, nil).Once()

	query, err := queries.NewGetDriverRouteQuery(otherDriverID, requester.ID())
	require.NoError(t, err)

	h := queries.NewGetDriverRouteQueryHandler(parcels, actors)
	_, err = h.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrAccessDenied)
	parcels.AssertNotCalled(t, "ListOpenByDriver", ctx, otherDriverID)
}

func TestGetDriverRouteQueryHandler_Handle_CourierAdminReadsCompanyDriver(t *testing.T) {
	ctx := context.Background()
	companyID := kernel.NewUUID()
	admin := fixtureActor(t, actor.RoleCourierAdmin, &companyID)
	driver := fixtureActor(t, actor.RoleDriver, &companyID)

	parcels := new(MockParcelRepository)
	actors := new(MockActorRepository)
	actors.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	actors.On("Get", ctx, driver.ID()).Return(driver, nil).Once()
	parcels.On("ListOpenByDriver", ctx, driver.ID()).Return([]*parcel.Parcel{}, nil).Once()

	query, err := queries.NewGetDriverRouteQuery(driver.ID(), admin.ID())
	require.NoError(t, err)

	h := queries.NewGetDriverRouteQueryHandler(parcels, actors)
	_, err = h.Handle(ctx, query)

	require.NoError(t, err)
	actors.AssertExpectations(t)
}

func TestGetDriverRouteQueryHandler_Handle_CourierAdminDeniedForeignDriver(t *testing.T) {
	ctx := context.Background()
	companyID := kernel.NewUUID()
	foreignCompanyID := kernel.NewUUID()
	admin := fixtureActor(t, actor.RoleCourierAdmin, &companyID)
	foreignDriver := fixtureActor(t, actor.RoleDriver, &foreignCompanyID)

	parcels := new(MockParcelRepository)
	actors := new(MockActorRepository)
	actors.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	actors.On("Get", ctx, foreignDriver.ID()).Return(foreignDriver, nil).Once()

	query, err := queries.NewGetDriverRouteQuery(foreignDriver.ID(), admin.ID())
	require.NoError(t, err)

	h := queries.NewGetDriverRouteQueryHandler(parcels, actors)
	_, err = h.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrAccessDenied)
}

func TestGetDriverRouteQueryHandler_Handle_SuperAdminReadsAnyRoute(t *testing.T) {
	ctx := context.Background()
	superAdmin := fixtureActor(t, actor.RoleSuperAdmin, nil)
	driverID := kernel.NewUUID()

	parcels := new(MockParcelRepository)
	actors := new(MockActorRepository)
	actors.On("Get", ctx, superAdmin.ID()).Return(superAdmin, nil).Once()
	parcels.On("ListOpenByDriver", ctx, driverID).Return([]*parcel.Parcel{}, nil).Once()

	query, err := queries.NewGetDriverRouteQuery(driverID, superAdmin.ID())
	require.NoError(t, err)

	h := queries.NewGetDriverRouteQueryHandler(parcels, actors)
	_, err = h.Handle(ctx, query)

	require.NoError(t, err)
}

func TestGetDriverRouteQueryHandler_Handle_UnknownRequester(t *testing.T) {
	ctx := context.Background()
	requesterID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	parcels := new(MockParcelRepository)
	actors := new(MockActorRepository)
	actors.On("Get", ctx, requesterID).
		Return(nil, errs.NewObjectNotFoundError("actorId", requesterID)).Once()

	query, err := queries.NewGetDriverRouteQuery(driverID, requesterID)
	require.NoError(t, err)

	h := queries.NewGetDriverRouteQueryHandler(parcels, actors)
	_, err = h.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrAccessDenied)
}
