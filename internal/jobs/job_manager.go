package jobs

import (
	"fmt"
	"log/slog"

	"logitrack/internal/notifications"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	inboxCleanupJob *InboxCleanupJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(inbox notifications.Repository, logger *slog.Logger) *JobManager {
	return &JobManager{
		inboxCleanupJob: NewInboxCleanupJob(inbox, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.inboxCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start inbox cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.inboxCleanupJob.Stop()
}
