package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierLivenessJob *CourierLivenessJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	markStaleCouriersOfflineHandler commands.MarkStaleCouriersOfflineCommandHandler,
	courierOfflineAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		courierLivenessJob: NewCourierLivenessJob(markStaleCouriersOfflineHandler, courierOfflineAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierLivenessJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier liveness job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.courierLivenessJob.Stop()
}
