package actor

import (
	"fmt"

	"logitrack/internal/pkg/errs"
)

// Role determines the scope of parcels an actor may see and mutate.
// An actor whose role cannot be resolved is denied everything; there is no
// implicit fallback to the customer scope.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleDriver
	RoleCourierAdmin
	RoleSuperAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer:     "customer",
		RoleDriver:       "driver",
		RoleCourierAdmin: "courier_admin",
		RoleSuperAdmin:   "super_admin",
	}
}

// RoleFromString parses the persisted/API representation of a role.
func RoleFromString(s string) (Role, error) {
	for r, str := range getRoleStrings() {
		if str == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the recognized values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

// String returns the snake_case representation used in storage and APIs.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
