package services

import (
	"errors"
	"fmt"

	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/parcel"
)

// ErrAccessDenied is the sentinel for authorization denials. Denials are never
// retried automatically.
var ErrAccessDenied = errors.New("access denied")

// AccessPolicy is the authorization surface of the platform. Every state
// machine operation and every single-parcel read consults it; list queries
// apply the same per-role scope as a SQL predicate.
//
// The scope per role:
//   - super_admin: everything, both modes
//   - courier_admin: parcels owned by their company; may also claim unassigned
//     parcels for their company via CanAssign
//   - driver: parcels assigned to them; inactive drivers lose mutate
//   - customer: parcels they sent, read only, except cancelling while pending
//
// An actor with an unresolved role is denied all mutations and reads nothing.
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanRead checks whether the actor may see the parcel at all.
func (AccessPolicy) CanRead(a *actor.Actor, p *parcel.Parcel) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	switch a.Role() {
	case actor.RoleSuperAdmin:
		return nil
	case actor.RoleCourierAdmin:
		if p.CompanyID() != nil && a.IsAffiliatedWith(*p.CompanyID()) {
			return nil
		}
	case actor.RoleDriver:
		if p.DriverID() != nil && p.DriverID().IsEqual(a.ID()) {
			return nil
		}
	case actor.RoleCustomer:
		if p.SenderID().IsEqual(a.ID()) {
			return nil
		}
	}

	return denied(a, p, "read")
}

// CanMutate checks whether the actor may transition the parcel to the requested
// status. Customers may only cancel their own pending parcels; inactive drivers
// are denied even for parcels assigned to them.
func (AccessPolicy) CanMutate(a *actor.Actor, p *parcel.Parcel, requested parcel.Status) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	switch a.Role() {
	case actor.RoleSuperAdmin:
		return nil
	case actor.RoleCourierAdmin:
		if p.CompanyID() != nil && a.IsAffiliatedWith(*p.CompanyID()) {
			return nil
		}
	case actor.RoleDriver:
		if p.DriverID() != nil && p.DriverID().IsEqual(a.ID()) && a.IsActive() {
			return nil
		}
	case actor.RoleCustomer:
		if p.SenderID().IsEqual(a.ID()) &&
			requested == parcel.StatusCancelled && p.Status() == parcel.StatusPending {
			return nil
		}
	}

	return denied(a, p, "mutate")
}

// CanAssign checks whether the actor may assign a driver to the parcel.
// Courier admins may assign within their own company, and may claim a parcel
// that no company owns yet; super admins may assign anywhere.
func (AccessPolicy) CanAssign(a *actor.Actor, p *parcel.Parcel) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	switch a.Role() {
	case actor.RoleSuperAdmin:
		return nil
	case actor.RoleCourierAdmin:
		if p.CompanyID() == nil {
			return nil
		}
		if a.IsAffiliatedWith(*p.CompanyID()) {
			return nil
		}
	}

	return denied(a, p, "assign")
}

func denied(a *actor.Actor, p *parcel.Parcel, mode string) error {
	return fmt.Errorf("%w: actor %s may not %s parcel %s",
		ErrAccessDenied, a.ID(), mode, p.ID())
}
