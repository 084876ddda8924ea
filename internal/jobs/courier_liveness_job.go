package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierLivenessJob periodically marks couriers offline when they have not
// reported a location for longer than the configured threshold. This is an
// advisory sweep over the availability flag; it never touches assignments.
type CourierLivenessJob struct {
	handler      commands.MarkStaleCouriersOfflineCommandHandler
	offlineAfter time.Duration
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewCourierLivenessJob creates the liveness sweep. offlineAfter is how long
// a courier may stay silent before being flipped offline.
func NewCourierLivenessJob(
	handler commands.MarkStaleCouriersOfflineCommandHandler,
	offlineAfter time.Duration,
	logger *slog.Logger,
) *CourierLivenessJob {
	return &CourierLivenessJob{
		handler:      handler,
		offlineAfter: offlineAfter,
		cron:         cron.New(),
		logger:       logger.With("component", "courier_liveness_job"),
	}
}

// Start begins the liveness sweep, running once a minute.
func (j *CourierLivenessJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewMarkStaleCouriersOfflineCommand(j.offlineAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "Courier liveness job misconfigured", "error", err)
			return
		}

		marked, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Courier liveness job failed", "error", err)
			return
		}
		if marked > 0 {
			j.logger.InfoContext(ctx, "Marked stale couriers offline", "count", marked)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier liveness job started (running every minute)")
	return nil
}

// Stop stops the liveness sweep.
func (j *CourierLivenessJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier liveness job stopped")
}
