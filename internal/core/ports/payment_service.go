package ports

import (
	"context"
	"errors"
)

// ErrPaymentFailed is returned when the external payment service declines an
// authorization. No parcel or ledger entry is created in that case.
var ErrPaymentFailed = errors.New("payment authorization failed")

// PaymentService is the external payment collaborator. Authorization is awaited
// synchronously before parcel creation; the core only acts on success.
type PaymentService interface {
	// Authorize charges the delivery fee using the given payment method and
	// returns the external payment id, or ErrPaymentFailed on decline.
	Authorize(ctx context.Context, amount float64, method string) (string, error)
}
