package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"parcel/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderClosingJob *OrderClosingJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	closeHandler commands.CloseSettledOrdersCommandHandler,
	retention time.Duration,
	interval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderClosingJob: NewOrderClosingJob(closeHandler, retention, interval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderClosingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order closing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderClosingJob.Stop()
}
