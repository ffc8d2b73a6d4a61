package services_test

import (
	"testing"
	"time"

	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParcel(t *testing.T, senderID kernel.UUID) *parcel.Parcel {
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

func testActor(t *testing.T, role actor.Role, companyID *kernel.UUID) *actor.Actor {
	t.Helper()

	a, err := actor.NewActor(kernel.NewUUID(), role, "Test Actor", "actor@example.com", companyID)
	require.NoError(t, err)
	return a
}

func TestAccessPolicy_CanRead(t *testing.T) {
	policy := services.NewAccessPolicy()
	now := time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)

	t.Run("customer reads own parcel only", func(t *testing.T) {
		sender := testActor(t, actor.RoleCustomer, nil)
		other := testActor(t, actor.RoleCustomer, nil)
		p := testParcel(t, sender.ID())

		require.NoError(t, policy.CanRead(sender, p))
		err := policy.CanRead(other, p)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrAccessDenied)
	})

	t.Run("driver reads assigned parcel only", func(t *testing.T) {
		companyID := kernel.NewUUID()
		driver := testActor(t, actor.RoleDriver, &companyID)
		otherDriver := testActor(t, actor.RoleDriver, &companyID)
		p := testParcel(t, kernel.NewUUID())
		require.NoError(t, p.AssignDriver(driver.ID(), companyID, now))

		require.NoError(t, policy.CanRead(driver, p))
		assert.ErrorIs(t, policy.CanRead(otherDriver, p), services.ErrAccessDenied)
	})

	t.Run("courier admin reads company parcels only", func(t *testing.T) {
		companyID := kernel.NewUUID()
		otherCompanyID := kernel.NewUUID()
		admin := testActor(t, actor.RoleCourierAdmin, &companyID)
		foreignAdmin := testActor(t, actor.RoleCourierAdmin, &otherCompanyID)
		driver := testActor(t, actor.RoleDriver, &companyID)
		p := testParcel(t, kernel.NewUUID())
		require.NoError(t, p.AssignDriver(driver.ID(), companyID, now))

		require.NoError(t, policy.CanRead(admin, p))
		assert.ErrorIs(t, policy.CanRead(foreignAdmin, p), services.ErrAccessDenied)
	})

	t.Run("courier admin cannot read unowned parcel", func(t *testing.T) {
		companyID := kernel.NewUUID()
		admin := testActor(t, actor.RoleCourierAdmin, &companyID)
		p := testParcel(t, kernel.NewUUID())

		assert.ErrorIs(t, policy.CanRead(admin, p), services.ErrAccessDenied)
	})

	t.Run("super admin reads everything", func(t *testing.T) {
		superAdmin := testActor(t, actor.RoleSuperAdmin, nil)
		p := testParcel(t, kernel.NewUUID())

		require.NoError(t, policy.CanRead(superAdmin, p))
	})
}

func TestAccessPolicy_CanMutate(t *testing.T) {
	policy := services.NewAccessPolicy()
	now := time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)

	t.Run("customer may cancel own pending parcel", func(t *testing.T) {
		sender := testActor(t, actor.RoleCustomer, nil)
		p := testParcel(t, sender.ID())

		require.NoError(t, policy.CanMutate(sender, p, parcel.StatusCancelled))
	})

	t.Run("customer may not advance the lifecycle", func(t *testing.T) {
		sender := testActor(t, actor.RoleCustomer, nil)
		p := testParcel(t, sender.ID())

		err := policy.CanMutate(sender, p, parcel.StatusPickedUp)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrAccessDenied)
	})

	t.Run("customer may not cancel after pickup", func(t *testing.T) {
		sender := testActor(t, actor.RoleCustomer, nil)
		companyID := kernel.NewUUID()
		p := testParcel(t, sender.ID())
		require.NoError(t, p.AssignDriver(kernel.NewUUID(), companyID, now))
		_, err := p.Transition(parcel.StatusPickedUp, "", "", now)
		require.NoError(t, err)

		assert.ErrorIs(t,
			policy.CanMutate(sender, p, parcel.StatusCancelled), services.ErrAccessDenied)
	})

	t.Run("customer may not cancel someone else's parcel", func(t *testing.T) {
		other := testActor(t, actor.RoleCustomer, nil)
		p := testParcel(t, kernel.NewUUID())

		assert.ErrorIs(t,
			policy.CanMutate(other, p, parcel.StatusCancelled), services.ErrAccessDenied)
	})

	t.Run("assigned driver may mutate", func(t *testing.T) {
		companyID := kernel.NewUUID()
		driver := testActor(t, actor.RoleDriver, &companyID)
		p := testParcel(t, kernel.NewUUID())
		require.NoError(t, p.AssignDriver(driver.ID(), companyID, now))

		require.NoError(t, policy.CanMutate(driver, p, parcel.StatusPickedUp))
	})

	t.Run("deactivated driver is denied even for own parcel", func(t *testing.T) {
		companyID := kernel.NewUUID()
		driver := testActor(t, actor.RoleDriver, &companyID)
		p := testParcel(t, kernel.NewUUID())
		require.NoError(t, p.AssignDriver(driver.ID(), companyID, now))

		driver.Deactivate()

		assert.ErrorIs(t,
			policy.CanMutate(driver, p, parcel.StatusPickedUp), services.ErrAccessDenied)
	})

	t.Run("company admin may mutate company parcels", func(t *testing.T) {
		companyID := kernel.NewUUID()
		admin := testActor(t, actor.RoleCourierAdmin, &companyID)
		p := testParcel(t, kernel.NewUUID())
		require.NoError(t, p.AssignDriver(kernel.NewUUID(), companyID, now))

		require.NoError(t, policy.CanMutate(admin, p, parcel.StatusPickedUp))
	})

	t.Run("super admin may mutate anything", func(t *testing.T) {
		superAdmin := testActor(t, actor.RoleSuperAdmin, nil)
		p := testParcel(t, kernel.NewUUID())

		require.NoError(t, policy.CanMutate(superAdmin, p, parcel.StatusPickedUp))
	})
}

func TestAccessPolicy_CanAssign(t *testing.T) {
	policy := services.NewAccessPolicy()
	now := time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)

	t.Run("courier admin may claim an unowned parcel", func(t *testing.T) {
		companyID := kernel.NewUUID()
		admin := testActor(t, actor.RoleCourierAdmin, &companyID)
		p := testParcel(t, kernel.NewUUID())

		require.NoError(t, policy.CanAssign(admin, p))
	})

	t.Run("courier admin may not touch another company's parcel", func(t *testing.T) {
		companyID := kernel.NewUUID()
		otherCompanyID := kernel.NewUUID()
		admin := testActor(t, actor.RoleCourierAdmin, &companyID)
		p := testParcel(t, kernel.NewUUID())
		require.NoError(t, p.AssignDriver(kernel.NewUUID(), otherCompanyID, now))

		assert.ErrorIs(t, policy.CanAssign(admin, p), services.ErrAccessDenied)
	})

	t.Run("drivers and customers may never assign", func(t *testing.T) {
		companyID := kernel.NewUUID()
		driver := testActor(t, actor.RoleDriver, &companyID)
		customer := testActor(t, actor.RoleCustomer, nil)
		p := testParcel(t, customer.ID())

		assert.ErrorIs(t, policy.CanAssign(driver, p), services.ErrAccessDenied)
		assert.ErrorIs(t, policy.CanAssign(customer, p), services.ErrAccessDenied)
	})

	t.Run("super admin may assign anywhere", func(t *testing.T) {
		superAdmin := testActor(t, actor.RoleSuperAdmin, nil)
		p := testParcel(t, kernel.NewUUID())

		require.NoError(t, policy.CanAssign(superAdmin, p))
	})
}
