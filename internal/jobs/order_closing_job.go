package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parcel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderClosingJob periodically closes settled orders whose retention window
// has passed. The sweep interval and the retention are both configurable;
// each run closes everything eligible in one transaction.
type OrderClosingJob struct {
	handler   commands.CloseSettledOrdersCommandHandler
	retention time.Duration
	interval  time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderClosingJob creates a job that sweeps settled orders into Closed.
func NewOrderClosingJob(
	handler commands.CloseSettledOrdersCommandHandler,
	retention time.Duration,
	interval time.Duration,
	logger *slog.Logger,
) *OrderClosingJob {
	return &OrderClosingJob{
		handler:   handler,
		retention: retention,
		interval:  interval,
		cron:      cron.New(),
		logger:    logger.With("component", "order_closing_job"),
	}
}

// Start schedules the closing sweep at the configured interval.
func (j *OrderClosingJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCloseSettledOrdersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order closing job misconfigured", "error", cmdErr)
			return
		}

		closed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order closing job failed", "error", handleErr)
			return
		}

		if closed > 0 {
			j.logger.InfoContext(ctx, "Settled orders closed", "count", closed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order closing job started",
		"interval", j.interval.String(),
		"retention", j.retention.String(),
	)
	return nil
}

// Stop stops the order closing job.
func (j *OrderClosingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order closing job stopped")
}
