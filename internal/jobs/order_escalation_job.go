package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderEscalationJob manages the scheduled escalation of stale orders.
// Runs every minute and bumps active orders older than the configured age
// to URGENT so they surface at the top of every kitchen queue.
type OrderEscalationJob struct {
	handler   commands.EscalateStaleOrdersCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderEscalationJob creates a new job for escalating stale orders.
// Uses EscalateStaleOrdersCommandHandler with the given age threshold.
func NewOrderEscalationJob(
	handler commands.EscalateStaleOrdersCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *OrderEscalationJob {
	return &OrderEscalationJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "order_escalation_job"),
	}
}

// Start begins the order escalation job to run every minute.
func (j *OrderEscalationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewEscalateStaleOrdersCommand(j.olderThan)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order escalation job misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order escalation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order escalation job started (running every minute)")
	return nil
}

// Stop stops the order escalation job.
func (j *OrderEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order escalation job stopped")
}
