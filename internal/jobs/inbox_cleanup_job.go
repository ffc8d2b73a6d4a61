package jobs

import (
	"context"
	"log/slog"
	"time"

	"logitrack/internal/notifications"

	"github.com/robfig/cron/v3"
)

// readRetention is how long read notifications are kept before pruning.
const readRetention = 30 * 24 * time.Hour

// InboxCleanupJob prunes read notifications past the retention window.
// Unread notifications are never pruned.
type InboxCleanupJob struct {
	inbox  notifications.Repository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewInboxCleanupJob creates the cleanup job over the durable inbox store.
func NewInboxCleanupJob(inbox notifications.Repository, logger *slog.Logger) *InboxCleanupJob {
	return &InboxCleanupJob{
		inbox:  inbox,
		cron:   cron.New(),
		logger: logger.With("component", "inbox_cleanup_job"),
	}
}

// Start schedules the cleanup to run at the top of every hour.
func (j *InboxCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-readRetention)

		removed, err := j.inbox.DeleteReadBefore(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Inbox cleanup job failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Pruned read notifications", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Inbox cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *InboxCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Inbox cleanup job stopped")
}
