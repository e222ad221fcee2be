// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// The only job today is the order expiration sweep. Deadline expiry is
// observed lazily at read time; the sweep makes those observations durable so
// the stored rows eventually agree with what readers have already been told.
// A sweep losing a conditional write to a concurrent user action is expected
// and skipped, never an error.
package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderExpirationJob *OrderExpirationJob
}

// NewJobManager creates a job manager wired to the given handlers.
func NewJobManager(
	expireOrdersHandler commands.ExpireOrdersCommandHandler,
	expirationSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderExpirationJob: NewOrderExpirationJob(expireOrdersHandler, expirationSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start order expiration job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderExpirationJob.Stop()
}
