package commands_test

import (
	"testing"

	"logitrack/internal/core/application/usecases/commands"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand_ValidInput(t *testing.T) {
	senderID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		senderID, "Jane Doe", "+15550100", "1 Delivery Ln",
		"9 Warehouse Rd", "express", 2.5, 100, "card")

	require.NoError(t, err)
	assert.True(t, cmd.SenderID().IsEqual(senderID))
	assert.Equal(t, "Jane Doe", cmd.Recipient().Name())
	assert.Equal(t, "9 Warehouse Rd", cmd.PickupAddress())
	assert.Equal(t, parcel.TypeExpress, cmd.PackageType())
	assert.InDelta(t, 2.5, cmd.WeightKg(), 1e-9)
	assert.InDelta(t, 100, cmd.DeclaredValue(), 1e-9)
	assert.Equal(t, "card", cmd.PaymentMethod())
}

func TestNewCreateParcelCommand_DefaultsPaymentMethod(t *testing.T) {
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), "Jane Doe", "+15550100", "1 Delivery Ln",
		"9 Warehouse Rd", "standard", 2.5, 100, "")

	require.NoError(t, err)
	assert.Equal(t, "card", cmd.PaymentMethod())
}

func TestNewCreateParcelCommand_InvalidSenderID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewCreateParcelCommand(
		invalidID, "Jane Doe", "+15550100", "1 Delivery Ln",
		"9 Warehouse Rd", "standard", 2.5, 100, "card")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateParcelCommand_InvalidRecipient(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), "", "+15550100", "1 Delivery Ln",
		"9 Warehouse Rd", "standard", 2.5, 100, "card")

	require.Error(t, err)
}

func TestNewCreateParcelCommand_EmptyPickupAddress(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), "Jane Doe", "+15550100", "1 Delivery Ln",
		"", "standard", 2.5, 100, "card")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateParcelCommand_UnknownPackageType(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), "Jane Doe", "+15550100", "1 Delivery Ln",
		"9 Warehouse Rd", "overnight", 2.5, 100, "card")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateParcelCommand_InvalidWeight(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), "Jane Doe", "+15550100", "1 Delivery Ln",
		"9 Warehouse Rd", "standard", 0, 100, "card")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateParcelCommand_NegativeDeclaredValue(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), "Jane Doe", "+15550100", "1 Delivery Ln",
		"9 Warehouse Rd", "standard", 2.5, -1, "card")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateParcelCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateParcelCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
}
