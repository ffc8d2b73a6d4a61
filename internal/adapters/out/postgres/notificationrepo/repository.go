package notificationrepo

import (
	"context"
	"errors"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/notifications"
	"logitrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements notifications.Repository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add persists a notification into an actor's inbox.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notifications.Notification) error {
	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByActor returns an actor's inbox, newest first.
func (r *GormNotificationRepository) ListByActor(
	ctx context.Context, actorID kernel.UUID, unreadOnly bool,
) ([]*notifications.Notification, error) {
	if err := actorID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("actor_id = ?", actorID.Bytes())
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var dtos []NotificationDTO
	if err := query.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	inbox := make([]*notifications.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		inbox = append(inbox, n)
	}

	return inbox, nil
}

// MarkRead flags a notification as read.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", id.Bytes()).
		Update("read", true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("notification", id.String())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	return nil
}

// DeleteReadBefore prunes read notifications created before the cutoff and
// returns the number of rows removed.
func (r *GormNotificationRepository) DeleteReadBefore(
	ctx context.Context, cutoff time.Time,
) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("read = ? AND created_at < ?", true, cutoff).
		Delete(&NotificationDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
