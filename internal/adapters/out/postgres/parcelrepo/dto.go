// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence, converting between the parcel aggregate and its
// relational representation.
package parcelrepo

import (
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Status is stored as its snake_case string so the raw-SQL query side can read
// it without a lookup table.
type ParcelDTO struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	TrackingCode  string       `gorm:"uniqueIndex"`
	SenderID      uuid.UUID    `gorm:"type:uuid;index"`
	DriverID      *uuid.UUID   `gorm:"type:uuid;index"`
	CompanyID     *uuid.UUID   `gorm:"type:uuid;index"`
	Recipient     RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	PickupAddress string
	PackageType   string
	WeightKg      float64
	DeclaredValue float64
	DeliveryFee   float64
	Status        string `gorm:"index"`
	PaymentStatus string
	PaymentID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// RecipientDTO represents the embedded recipient contact columns within the
// parcels table.
type RecipientDTO struct {
	Name    string
	Phone   string
	Address string
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	var driverID, companyID *uuid.UUID
	if id := p.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}
	if id := p.CompanyID(); id != nil {
		raw := id.Bytes()
		companyID = &raw
	}

	return ParcelDTO{
		ID:           p.ID().Bytes(),
		TrackingCode: p.TrackingCode().Value(),
		SenderID:     p.SenderID().Bytes(),
		DriverID:     driverID,
		CompanyID:    companyID,
		Recipient: RecipientDTO{
			Name:    p.Recipient().Name(),
			Phone:   p.Recipient().Phone(),
			Address: p.Recipient().Address(),
		},
		PickupAddress: p.PickupAddress(),
		PackageType:   p.PackageType().String(),
		WeightKg:      p.WeightKg(),
		DeclaredValue: p.DeclaredValue(),
		DeliveryFee:   p.DeliveryFee(),
		Status:        p.Status().String(),
		PaymentStatus: p.PaymentStatus().String(),
		PaymentID:     p.PaymentID(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
		PickedUpAt:    p.PickedUpAt(),
		DeliveredAt:   p.DeliveredAt(),
	}
}

// toDomain converts a database DTO back to a parcel aggregate via
// RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var driverID, companyID *kernel.UUID
	if dto.DriverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		driverID = &dID
	}
	if dto.CompanyID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CompanyID)[:])
		if cErr != nil {
			return nil, cErr
		}
		companyID = &cID
	}

	code, err := parcel.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	recipient, err := parcel.NewRecipient(dto.Recipient.Name, dto.Recipient.Phone, dto.Recipient.Address)
	if err != nil {
		return nil, err
	}

	packageType, err := parcel.PackageTypeFromString(dto.PackageType)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := parcel.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		code,
		senderID,
		driverID,
		companyID,
		recipient,
		dto.PickupAddress,
		packageType,
		dto.WeightKg,
		dto.DeclaredValue,
		dto.DeliveryFee,
		status,
		paymentStatus,
		dto.PaymentID,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
	)
}
