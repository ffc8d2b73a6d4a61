// Package company models courier companies, the organizational unit grouping
// drivers and courier admins and scoping parcel assignment.
package company

import (
	"errors"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/errs"
)

// ErrCompanyIsNotConstructed is returned when a Company instance was not
// created through NewCompany or RestoreCompany.
var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany or RestoreCompany")

// Company is a courier company.
type Company struct {
	id     kernel.UUID
	name   string
	email  string
	phone  string
	active bool

	isConstructed bool
}

// NewCompany creates an active courier company.
func NewCompany(id kernel.UUID, name, email, phone string) (*Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Company{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreCompany reconstructs a company from persistence.
func RestoreCompany(id kernel.UUID, name, email, phone string, active bool) (*Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Company{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the Company instance was properly constructed.
func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

// ID returns the company's unique identifier.
func (c *Company) ID() kernel.UUID {
	return c.id
}

// Name returns the company name.
func (c *Company) Name() string {
	return c.name
}

// Email returns the company contact email.
func (c *Company) Email() string {
	return c.email
}

// Phone returns the company contact phone number.
func (c *Company) Phone() string {
	return c.phone
}

// IsActive reports whether the company is operating on the platform.
func (c *Company) IsActive() bool {
	return c.active
}
