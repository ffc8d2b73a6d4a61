package commands_test

import (
	"context"
	"testing"
	"time"

	"logitrack/internal/core/application/usecases/commands"
	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/company"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(
	ctx context.Context, aggregate *parcel.Parcel, expectedStatus parcel.Status,
) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockParcelRepository) UpdateAssignment(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingCode(
	ctx context.Context, code parcel.TrackingCode,
) (*parcel.Parcel, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) TrackingCodeExists(
	ctx context.Context, code parcel.TrackingCode,
) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockParcelRepository) ListOpenByDriver(
	ctx context.Context, driverID kernel.UUID,
) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockTrackingLedger struct{ mock.Mock }

func (m *MockTrackingLedger) Append(ctx context.Context, event *parcel.TrackingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingLedger) History(
	ctx context.Context, parcelID kernel.UUID,
) ([]*parcel.TrackingEvent, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.TrackingEvent), args.Error(1)
}

func (m *MockTrackingLedger) Latest(
	ctx context.Context, parcelID kernel.UUID,
) (*parcel.TrackingEvent, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.TrackingEvent), args.Error(1)
}

type MockActorRepository struct{ mock.Mock }

func (m *MockActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Actor), args.Error(1)
}

func (m *MockActorRepository) ListAdminsByCompany(
	ctx context.Context, companyID kernel.UUID,
) ([]*actor.Actor, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*actor.Actor), args.Error(1)
}

func (m *MockActorRepository) ListSuperAdmins(ctx context.Context) ([]*actor.Actor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*actor.Actor), args.Error(1)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockParcelUoW) TrackingLedger() ports.TrackingLedger {
	args := m.Called()
	return args.Get(0).(ports.TrackingLedger)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) TrackingLedger() ports.TrackingLedger {
	args := m.Called()
	return args.Get(0).(ports.TrackingLedger)
}

func (m *MockUoW) ActorRepository() ports.ActorRepository {
	args := m.Called()
	return args.Get(0).(ports.ActorRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

type MockPaymentService struct{ mock.Mock }

func (m *MockPaymentService) Authorize(
	ctx context.Context, amount float64, method string,
) (string, error) {
	args := m.Called(ctx, amount, method)
	return args.String(0), args.Error(1)
}

type MockChangePublisher struct{ mock.Mock }

func (m *MockChangePublisher) Publish(change ports.ParcelChange) {
	m.Called(change)
}

func pendingParcel(t *testing.T, senderID kernel.UUID) *parcel.Parcel {
	t.Helper()

	recipient, err := parcel.NewRecipient("Jane Doe", "+15550100", "1 Delivery Ln")
	require.NoError(t, err)

	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	p, err := parcel.NewParcel(
		kernel.NewUUID(), parcel.GenerateTrackingCode(now), senderID, recipient,
		"9 Warehouse Rd", parcel.TypeStandard, 2.5, 100, 15, now)
	require.NoError(t, err)
	return p
}

func driverActor(t *testing.T, companyID kernel.UUID) *actor.Actor {
	t.Helper()

	a, err := actor.NewActor(
		kernel.NewUUID(), actor.RoleDriver, "Dan Driver", "dan@example.com", &companyID)
	require.NoError(t, err)
	return a
}

func courierAdminActor(t *testing.T, companyID kernel.UUID) *actor.Actor {
	t.Helper()

	a, err := actor.NewActor(
		kernel.NewUUID(), actor.RoleCourierAdmin, "Ada Admin", "ada@example.com", &companyID)
	require.NoError(t, err)
	return a
}

func courierCompany(t *testing.T, id kernel.UUID, active bool) *company.Company {
	t.Helper()

	co, err := company.RestoreCompany(id, "Speedy Couriers", "ops@speedy.example.com", "+15550199", active)
	require.NoError(t, err)
	return co
}

func superAdminActor(t *testing.T) *actor.Actor {
	t.Helper()

	a, err := actor.NewActor(
		kernel.NewUUID(), actor.RoleSuperAdmin, "Sam Super", "sam@example.com", nil)
	require.NoError(t, err)
	return a
}
