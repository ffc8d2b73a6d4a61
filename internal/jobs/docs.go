// Package jobs provides the scheduled background tasks of the platform,
// implemented on github.com/robfig/cron/v3.
//
// InboxCleanupJob prunes read notifications older than the retention window
// once per hour, keeping the inbox table from growing without bound.
package jobs
