// Package actor models platform participants: customers, drivers, courier
// company admins, and the platform's super admins. Role and company affiliation
// together determine the access scope enforced by services.AccessPolicy.
package actor

import (
	"errors"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through NewActor or RestoreActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or RestoreActor")

// Actor is a platform participant. Drivers and courier admins carry a courier
// company affiliation; customers and super admins do not.
type Actor struct {
	id        kernel.UUID
	role      Role
	name      string
	email     string
	phone     string
	companyID *kernel.UUID
	active    bool

	isConstructed bool
}

// NewActor creates an active actor with the given role. Drivers and courier
// admins must carry a company affiliation; other roles must not.
func NewActor(id kernel.UUID, role Role, name, email string, companyID *kernel.UUID) (*Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	affiliated := role == RoleDriver || role == RoleCourierAdmin
	if affiliated && companyID == nil {
		return nil, errs.NewValueIsRequiredError("companyId")
	}
	if !affiliated && companyID != nil {
		return nil, errs.NewValueIsInvalidError("companyId is only valid for drivers and courier admins")
	}
	if companyID != nil {
		if err := companyID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Actor{
		id:            id,
		role:          role,
		name:          name,
		email:         email,
		companyID:     companyID,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreActor reconstructs an actor from persistence.
func RestoreActor(
	id kernel.UUID, role Role, name, email, phone string, companyID *kernel.UUID, active bool,
) (*Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}

	return &Actor{
		id:            id,
		role:          role,
		name:          name,
		email:         email,
		phone:         phone,
		companyID:     companyID,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor instance was properly constructed.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a *Actor) Role() Role {
	return a.role
}

// Name returns the actor's display name.
func (a *Actor) Name() string {
	return a.name
}

// Email returns the actor's contact email.
func (a *Actor) Email() string {
	return a.email
}

// Phone returns the actor's contact phone number.
func (a *Actor) Phone() string {
	return a.phone
}

// CompanyID returns the courier company affiliation, or nil for customers and
// super admins.
func (a *Actor) CompanyID() *kernel.UUID {
	return a.companyID
}

// IsActive reports whether the actor may mutate state. Inactive drivers are
// denied mutations even for parcels assigned to them.
func (a *Actor) IsActive() bool {
	return a.active
}

// Deactivate marks the actor inactive.
func (a *Actor) Deactivate() {
	a.active = false
}

// IsAffiliatedWith reports whether the actor belongs to the given company.
func (a *Actor) IsAffiliatedWith(companyID kernel.UUID) bool {
	return a.companyID != nil && a.companyID.IsEqual(companyID)
}
