package commands

import (
	"errors"
	"fmt"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/errs"
	"logitrack/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand represents a sender's request to ship a parcel.
// Validation reports the first violated field constraint so the caller can
// correct input incrementally.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	senderID      kernel.UUID
	recipient     parcel.Recipient
	pickupAddress string
	packageType   parcel.PackageType
	weightKg      float64
	declaredValue float64
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand validates the shipment request field by field and
// returns the first violated constraint as the error.
func NewCreateParcelCommand(
	senderID kernel.UUID,
	recipientName, recipientPhone, recipientAddress string,
	pickupAddress string,
	packageType string,
	weightKg, declaredValue float64,
	paymentMethod string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSenderID(senderID); err != nil {
		return CreateParcelCommand{}, err
	}
	if err := cmd.setRecipient(recipientName, recipientPhone, recipientAddress); err != nil {
		return CreateParcelCommand{}, err
	}
	if err := cmd.setPickupAddress(pickupAddress); err != nil {
		return CreateParcelCommand{}, err
	}
	if err := cmd.setPackageType(packageType); err != nil {
		return CreateParcelCommand{}, err
	}
	if err := cmd.setWeightKg(weightKg); err != nil {
		return CreateParcelCommand{}, err
	}
	if err := cmd.setDeclaredValue(declaredValue); err != nil {
		return CreateParcelCommand{}, err
	}
	cmd.paymentMethod = paymentMethod
	if cmd.paymentMethod == "" {
		cmd.paymentMethod = "card"
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// SenderID returns the identity of the customer shipping the parcel.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Recipient returns the validated delivery contact details.
func (c CreateParcelCommand) Recipient() parcel.Recipient {
	return c.recipient
}

// PickupAddress returns the address the parcel is collected from.
func (c CreateParcelCommand) PickupAddress() string {
	return c.pickupAddress
}

// PackageType returns the parsed parcel classification.
func (c CreateParcelCommand) PackageType() parcel.PackageType {
	return c.packageType
}

// WeightKg returns the parcel weight in kilograms.
func (c CreateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// DeclaredValue returns the sender-declared value of the contents.
func (c CreateParcelCommand) DeclaredValue() float64 {
	return c.declaredValue
}

// PaymentMethod returns the payment method forwarded to the payment service.
func (c CreateParcelCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setRecipient(name, phone, address string) error {
	recipient, err := parcel.NewRecipient(name, phone, address)
	if err != nil {
		return err
	}
	c.recipient = recipient
	return nil
}

func (c *CreateParcelCommand) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	c.pickupAddress = address
	return nil
}

func (c *CreateParcelCommand) setPackageType(packageType string) error {
	parsed, err := parcel.PackageTypeFromString(packageType)
	if err != nil {
		return err
	}
	c.packageType = parsed
	return nil
}

func (c *CreateParcelCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%g is not greater than 0", weightKg))
	}
	c.weightKg = weightKg
	return nil
}

func (c *CreateParcelCommand) setDeclaredValue(declaredValue float64) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"declaredValue", fmt.Errorf("%g is negative", declaredValue))
	}
	c.declaredValue = declaredValue
	return nil
}
