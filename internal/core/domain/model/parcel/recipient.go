package parcel

import (
	"logitrack/internal/pkg/errs"
)

// Recipient is a value object holding the delivery contact details of a parcel.
type Recipient struct {
	name    string
	phone   string
	address string
}

// NewRecipient creates a Recipient, requiring all three fields to be present.
func NewRecipient(name, phone, address string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientName")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientPhone")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientAddress")
	}
	return Recipient{name: name, phone: phone, address: address}, nil
}

// Name returns the recipient's display name.
func (r Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's contact phone number.
func (r Recipient) Phone() string {
	return r.phone
}

// Address returns the delivery address.
func (r Recipient) Address() string {
	return r.address
}

// Validate returns an error for the zero value.
func (r Recipient) Validate() error {
	if r.name == "" || r.phone == "" || r.address == "" {
		return errs.NewValueIsRequiredError("recipient must be created via NewRecipient")
	}
	return nil
}
