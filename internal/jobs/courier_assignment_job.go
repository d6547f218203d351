package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierAssignmentJob manages the scheduled dispatch of couriers to
// deliveries. Runs every five seconds to match pending deliveries with
// available couriers.
type CourierAssignmentJob struct {
	handler commands.AutoAssignCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierAssignmentJob creates a new job for dispatching couriers.
// Uses AutoAssignCouriersCommandHandler to process one dispatch round per tick.
func NewCourierAssignmentJob(handler commands.AutoAssignCouriersCommandHandler, logger *slog.Logger) *CourierAssignmentJob {
	return &CourierAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_assignment_job"),
	}
}

// Start begins the courier assignment job to run every five seconds.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAutoAssignCouriersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingDeliveries) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
				j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started (running every five seconds)")
	return nil
}

// Stop stops the courier assignment job.
func (j *CourierAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}
