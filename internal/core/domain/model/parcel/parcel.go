package parcel

import (
	"errors"
	"fmt"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

	// ErrDriverAlreadyAssigned is returned when assigning a driver to a parcel
	// that already has one. Reassignment is not supported.
	ErrDriverAlreadyAssigned = errors.New("parcel already has an assigned driver")

	// ErrParcelNotAssignable is returned when assigning a driver to a parcel in
	// a terminal status.
	ErrParcelNotAssignable = errors.New("parcel is in a terminal status and cannot be assigned")
)

// Parcel is the aggregate root for a shipment request. It owns the status state
// machine and is the only place status transitions are applied; every mutation
// goes through a validated method so the aggregate can never hold a status its
// ledger does not back.
//
// Invariants:
//   - weight is positive, declared value and delivery fee are non-negative
//   - current status is always the status of the most recent tracking event
//     (or pending when the ledger holds only the implicit creation event)
//   - cancellation is a terminal status, never a deletion
type Parcel struct {
	id            kernel.UUID
	trackingCode  TrackingCode
	senderID      kernel.UUID
	driverID      *kernel.UUID
	companyID     *kernel.UUID
	recipient     Recipient
	pickupAddress string
	packageType   PackageType
	weightKg      float64
	declaredValue float64
	deliveryFee   float64
	status        Status
	paymentStatus PaymentStatus
	paymentID     string
	createdAt     time.Time
	updatedAt     time.Time
	pickedUpAt    *time.Time
	deliveredAt   *time.Time

	isConstructed bool
}

// NewParcel creates a pending parcel for the given sender. The delivery fee is
// computed by the caller (see services.FeeCalculator) and stored at full
// precision; payment status starts as pending until authorization succeeds.
func NewParcel(
	id kernel.UUID,
	trackingCode TrackingCode,
	senderID kernel.UUID,
	recipient Recipient,
	pickupAddress string,
	packageType PackageType,
	weightKg float64,
	declaredValue float64,
	deliveryFee float64,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setSenderID(senderID),
		p.setRecipient(recipient),
		p.setPickupAddress(pickupAddress),
		p.setPackageType(packageType),
		p.setWeightKg(weightKg),
		p.setDeclaredValue(declaredValue),
		p.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence without re-running the
// creation workflow. Status and payment status must already be valid values.
func RestoreParcel(
	id kernel.UUID,
	trackingCode TrackingCode,
	senderID kernel.UUID,
	driverID *kernel.UUID,
	companyID *kernel.UUID,
	recipient Recipient,
	pickupAddress string,
	packageType PackageType,
	weightKg float64,
	declaredValue float64,
	deliveryFee float64,
	status Status,
	paymentStatus PaymentStatus,
	paymentID string,
	createdAt time.Time,
	updatedAt time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		trackingCode.Validate(),
		senderID.Validate(),
		recipient.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Parcel{
		id:            id,
		trackingCode:  trackingCode,
		senderID:      senderID,
		driverID:      driverID,
		companyID:     companyID,
		recipient:     recipient,
		pickupAddress: pickupAddress,
		packageType:   packageType,
		weightKg:      weightKg,
		declaredValue: declaredValue,
		deliveryFee:   deliveryFee,
		status:        status,
		paymentStatus: paymentStatus,
		paymentID:     paymentID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		pickedUpAt:    pickedUpAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the human-facing tracking code.
func (p *Parcel) TrackingCode() TrackingCode {
	return p.trackingCode
}

// SenderID returns the identity of the customer who created the parcel.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// DriverID returns the assigned driver's identity, or nil if unassigned.
func (p *Parcel) DriverID() *kernel.UUID {
	return p.driverID
}

// CompanyID returns the owning courier company's identity, or nil if the parcel
// has not been claimed by a company yet.
func (p *Parcel) CompanyID() *kernel.UUID {
	return p.companyID
}

// Recipient returns the delivery contact details.
func (p *Parcel) Recipient() Recipient {
	return p.recipient
}

// PickupAddress returns the address the driver collects the parcel from.
func (p *Parcel) PickupAddress() string {
	return p.pickupAddress
}

// PackageType returns the parcel classification.
func (p *Parcel) PackageType() PackageType {
	return p.packageType
}

// WeightKg returns the parcel weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// DeclaredValue returns the sender-declared value of the contents.
func (p *Parcel) DeclaredValue() float64 {
	return p.declaredValue
}

// DeliveryFee returns the computed delivery fee at full precision.
// Rounding to currency precision happens at presentation time only.
func (p *Parcel) DeliveryFee() float64 {
	return p.deliveryFee
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// PaymentStatus returns the payment authorization state.
func (p *Parcel) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

// PaymentID returns the external payment service's authorization id, or an
// empty string when no authorization has succeeded.
func (p *Parcel) PaymentID() string {
	return p.paymentID
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// PickedUpAt returns the pickup timestamp, or nil before pickup.
func (p *Parcel) PickedUpAt() *time.Time {
	return p.pickedUpAt
}

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// CreationEvent builds the implicit pending ledger entry written when the
// parcel is first persisted.
func (p *Parcel) CreationEvent() (*TrackingEvent, error) {
	return NewTrackingEvent(
		p.id,
		StatusPending,
		p.pickupAddress,
		"Package created and payment confirmed. Awaiting pickup",
		p.createdAt,
	)
}

// Transition moves the parcel to the requested status and returns the tracking
// event recording the step. The transition table is enforced here; callers must
// persist the event append and the status update atomically.
//
// Side effects on success: updatedAt is bumped, the pickup timestamp is set on
// the first transition to picked_up, and the delivery timestamp is set on
// delivered.
func (p *Parcel) Transition(requested Status, location, notes string, now time.Time) (*TrackingEvent, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := p.status.TransitionTo(requested)
	if err != nil {
		return nil, err
	}

	event, err := NewTrackingEvent(p.id, newStatus, location, notes, now)
	if err != nil {
		return nil, err
	}

	p.status = newStatus
	p.updatedAt = now
	switch newStatus {
	case StatusPickedUp:
		if p.pickedUpAt == nil {
			t := now
			p.pickedUpAt = &t
		}
	case StatusDelivered:
		t := now
		p.deliveredAt = &t
	}

	return event, nil
}

// AssignDriver assigns the parcel to a driver of the given courier company,
// transferring mutation authority to the driver and the company's admins.
// Assignment does not change the lifecycle status and appends no ledger entry.
func (p *Parcel) AssignDriver(driverID, companyID kernel.UUID, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := companyID.Validate(); err != nil {
		return err
	}
	if p.driverID != nil {
		return ErrDriverAlreadyAssigned
	}
	if p.status.IsTerminal() {
		return ErrParcelNotAssignable
	}

	p.driverID = &driverID
	p.companyID = &companyID
	p.updatedAt = now
	return nil
}

// MarkPaid records a successful payment authorization from the external
// payment service.
func (p *Parcel) MarkPaid(paymentID string, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentId")
	}

	p.paymentStatus = PaymentPaid
	p.paymentID = paymentID
	p.updatedAt = now
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(code TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	p.trackingCode = code
	return nil
}

func (p *Parcel) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	p.senderID = senderID
	return nil
}

func (p *Parcel) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	p.pickupAddress = address
	return nil
}

func (p *Parcel) setPackageType(t PackageType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.packageType = t
	return nil
}

func (p *Parcel) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%g is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setDeclaredValue(declaredValue float64) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"declaredValue", fmt.Errorf("%g is negative", declaredValue))
	}
	p.declaredValue = declaredValue
	return nil
}

func (p *Parcel) setDeliveryFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryFee", fmt.Errorf("%g is negative", fee))
	}
	p.deliveryFee = fee
	return nil
}
