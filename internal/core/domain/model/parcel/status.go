package parcel

import (
	"errors"
	"fmt"
	"strings"

	"logitrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a small fixed state machine: pending -> picked_up -> in_transit
// -> delivered, with cancelled reachable only from pending. The two terminal
// states (delivered, cancelled) allow no further transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every parcel. The parcel has been
	// registered and paid for but no driver has picked it up yet.
	StatusPending

	// StatusPickedUp indicates the assigned driver has collected the parcel.
	StatusPickedUp

	// StatusInTransit indicates the parcel is on its way to the recipient.
	StatusInTransit

	// StatusDelivered indicates the parcel reached the recipient. Terminal.
	StatusDelivered

	// StatusCancelled indicates the sender cancelled the parcel while it was
	// still pending. Terminal.
	StatusCancelled
)

// ErrInvalidTransition is the sentinel for disallowed status transitions.
// A caller receiving it should re-fetch the parcel before retrying, since the
// status may have been moved by a concurrent request.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a transition not present in the state machine's
// transition table.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// allowedNext is the transition table: for each status, the set of statuses a
// parcel may move to. Terminal statuses map to an empty set.
func allowedNext(s Status) []Status {
	switch s {
	case StatusPending:
		return []Status{StatusPickedUp, StatusCancelled}
	case StatusPickedUp:
		return []Status{StatusInTransit}
	case StatusInTransit:
		return []Status{StatusDelivered}
	default:
		return nil
	}
}

// StatusFromString parses the persisted/API representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the five recognized values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the snake_case representation used in storage and APIs.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Display returns the human-readable form used in notification messages,
// e.g. "picked up" for picked_up.
func (s Status) Display() string {
	return strings.ReplaceAll(s.String(), "_", " ")
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether next is in the allowed-next set of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedNext(s) {
		if next == allowed {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition against the table and returns the new
// status, or an InvalidTransitionError if the pair is not allowed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return StatusUnknown, NewInvalidTransitionError(s, next)
	}
	return next, nil
}
