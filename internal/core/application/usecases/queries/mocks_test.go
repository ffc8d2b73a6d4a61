package queries_test

import (
	"context"
	"testing"
	"time"

	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"

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

func fixtureParcel(
	t *testing.T, senderID kernel.UUID, packageType parcel.PackageType, createdAt time.Time,
) *parcel.Parcel {
	t.Helper()

	recipient, err := parcel.NewRecipient("Jane Doe", "+15550100", "1 Delivery Ln")
	require.NoError(t, err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(), parcel.GenerateTrackingCode(createdAt), senderID, recipient,
		"9 Warehouse Rd", packageType, 2.5, 100, 15, createdAt)
	require.NoError(t, err)
	return p
}

func fixtureActor(t *testing.T, role actor.Role, companyID *kernel.UUID) *actor.Actor {
	t.Helper()

	a, err := actor.NewActor(kernel.NewUUID(), role, "Test Actor", "actor@example.com", companyID)
	require.NoError(t, err)
	return a
}
