package commands

import (
	"errors"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
)

// AssignDriverCommand represents an admin's request to hand a parcel to a
// specific driver.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	actorID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates an assignment request.
func NewAssignDriverCommand(parcelID, actorID, driverID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := parcelID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}
	if err := driverID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}

	cmd.parcelID = parcelID
	cmd.actorID = actorID
	cmd.driverID = driverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to assign.
func (c AssignDriverCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ActorID returns the identity of the admin requesting the assignment.
func (c AssignDriverCommand) ActorID() kernel.UUID {
	return c.actorID
}

// DriverID returns the identity of the driver receiving the delivery.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
