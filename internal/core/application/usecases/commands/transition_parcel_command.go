package commands

import (
	"errors"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/guard"
)

var (
	ErrTransitionParcelCommandIsNotConstructed = errors.New(
		"TransitionParcelCommand must be created via NewTransitionParcelCommand constructor",
	)
)

// TransitionParcelCommand represents a request to move a parcel to a new
// lifecycle status, recorded with an optional free-text location and notes.
type TransitionParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	actorID  kernel.UUID
	status   parcel.Status
	location string
	notes    string

	guard guard.ConstructorGuard
}

// NewTransitionParcelCommand creates a transition request. The requested status
// must be a recognized value; whether the transition is allowed from the
// parcel's current status is decided by the aggregate, not here.
func NewTransitionParcelCommand(
	parcelID, actorID kernel.UUID, status parcel.Status, location, notes string,
) (TransitionParcelCommand, error) {
	cmd := TransitionParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := parcelID.Validate(); err != nil {
		return TransitionParcelCommand{}, err
	}
	if err := actorID.Validate(); err != nil {
		return TransitionParcelCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return TransitionParcelCommand{}, err
	}

	cmd.parcelID = parcelID
	cmd.actorID = actorID
	cmd.status = status
	cmd.location = location
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionParcelCommand) Validate() error {
	return c.guard.Validate(ErrTransitionParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to transition.
func (c TransitionParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ActorID returns the identity of the actor requesting the transition.
func (c TransitionParcelCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Status returns the requested next status.
func (c TransitionParcelCommand) Status() parcel.Status {
	return c.status
}

// Location returns the free-text location for the tracking event.
func (c TransitionParcelCommand) Location() string {
	return c.location
}

// Notes returns the free-text notes for the tracking event.
func (c TransitionParcelCommand) Notes() string {
	return c.notes
}
