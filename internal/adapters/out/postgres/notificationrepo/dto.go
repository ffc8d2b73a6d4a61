// Package notificationrepo persists actor inboxes for the notification hub.
// Rows survive actor disconnects; a background job prunes read rows after a
// retention window.
package notificationrepo

import (
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/ports"
	"logitrack/internal/notifications"

	"github.com/google/uuid"
)

// NotificationDTO represents one inbox row.
type NotificationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID      uuid.UUID `gorm:"type:uuid;index"`
	Kind         string
	Title        string
	Message      string
	ParcelID     uuid.UUID `gorm:"type:uuid"`
	TrackingCode string
	CreatedAt    time.Time `gorm:"index"`
	Read         bool
}

// TableName specifies the database table name for inbox rows.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(n *notifications.Notification) NotificationDTO {
	return NotificationDTO{
		ID:           n.ID.Bytes(),
		ActorID:      n.ActorID.Bytes(),
		Kind:         string(n.Kind),
		Title:        n.Title,
		Message:      n.Message,
		ParcelID:     n.ParcelID.Bytes(),
		TrackingCode: n.TrackingCode,
		CreatedAt:    n.CreatedAt,
		Read:         n.Read,
	}
}

// toDomain converts a database DTO back to a notification.
func toDomain(dto NotificationDTO) (*notifications.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return &notifications.Notification{
		ID:           id,
		ActorID:      actorID,
		Kind:         ports.ChangeKind(dto.Kind),
		Title:        dto.Title,
		Message:      dto.Message,
		ParcelID:     parcelID,
		TrackingCode: dto.TrackingCode,
		CreatedAt:    dto.CreatedAt,
		Read:         dto.Read,
	}, nil
}
