package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCleanupJob cancels Pending orders that sat unconfirmed for longer
// than the retention window. Each tick computes the cutoff as now minus the
// window and hands it to the cleanup command.
type StaleOrderCleanupJob struct {
	handler  commands.CancelStaleOrdersCommandHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderCleanupJob creates a job that sweeps stale pending orders.
// The schedule is a five-field cron expression; maxAge is how long an order
// may stay Pending before the sweep cancels it.
func NewStaleOrderCleanupJob(
	handler commands.CancelStaleOrdersCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderCleanupJob {
	return &StaleOrderCleanupJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_order_cleanup_job"),
	}
}

// Start begins the cleanup job on its configured schedule.
func (j *StaleOrderCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(time.Now().Add(-j.maxAge))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cleanup job misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cleanup job failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale pending orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cleanup job started",
		"schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Stop stops the cleanup job.
func (j *StaleOrderCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cleanup job stopped")
}
