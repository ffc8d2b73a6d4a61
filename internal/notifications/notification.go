package notifications

import (
	"context"
	"fmt"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/ports"
)

// Notification is one inbox entry for one actor.
type Notification struct {
	ID           kernel.UUID
	ActorID      kernel.UUID
	Kind         ports.ChangeKind
	Title        string
	Message      string
	ParcelID     kernel.UUID
	TrackingCode string
	CreatedAt    time.Time
	Read         bool
}

// Repository is the durable inbox store backing the hub. Notifications for
// disconnected actors stay queued here; read notifications are pruned by a
// background job.
type Repository interface {
	// Add persists a notification into an actor's inbox.
	Add(ctx context.Context, n *Notification) error

	// ListByActor returns an actor's inbox, newest first.
	ListByActor(ctx context.Context, actorID kernel.UUID, unreadOnly bool) ([]*Notification, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id kernel.UUID) error

	// DeleteReadBefore prunes read notifications created before the cutoff and
	// returns the number of rows removed.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// newNotification builds the inbox entry for one relevant actor.
// The title and message wording follows the user-facing copy of the platform.
func newNotification(actorID kernel.UUID, change ports.ParcelChange, now time.Time) *Notification {
	n := &Notification{
		ID:           kernel.NewUUID(),
		ActorID:      actorID,
		Kind:         change.Kind,
		ParcelID:     change.ParcelID,
		TrackingCode: change.TrackingCode,
		CreatedAt:    now,
	}

	switch change.Kind {
	case ports.ChangeDriverAssigned:
		n.Title = "New Delivery Assigned"
		n.Message = fmt.Sprintf("You have been assigned a new delivery for package #%s", change.TrackingCode)
	case ports.ChangeDelivered:
		n.Title = "Package Delivered"
		n.Message = fmt.Sprintf("Your package #%s has been delivered successfully", change.TrackingCode)
	default:
		n.Title = "Package Status Updated"
		n.Message = fmt.Sprintf("Package #%s status updated to %s", change.TrackingCode, change.Status.Display())
	}

	return n
}
