package parcel

import (
	"fmt"

	"logitrack/internal/pkg/errs"
)

// PaymentStatus tracks the outcome of the external payment authorization.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending: "pending",
		PaymentPaid:    "paid",
		PaymentFailed:  "failed",
	}
}

// PaymentStatusFromString parses the persisted representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for ps, str := range getPaymentStatusStrings() {
		if str == s {
			return ps, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the PaymentStatus is one of the recognized values.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", int(p)))
	}
	return nil
}

// String returns the persisted representation.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
