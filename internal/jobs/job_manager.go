package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
// Courier auto-assignment can be switched off for deployments where
// dispatchers assign couriers by hand.
type JobManager struct {
	courierAssignmentJob *CourierAssignmentJob
	orderEscalationJob   *OrderEscalationJob
	autoAssignEnabled    bool
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	autoAssignHandler commands.AutoAssignCouriersCommandHandler,
	escalateHandler commands.EscalateStaleOrdersCommandHandler,
	escalateAfter time.Duration,
	autoAssignEnabled bool,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		courierAssignmentJob: NewCourierAssignmentJob(autoAssignHandler, logger),
		orderEscalationJob:   NewOrderEscalationJob(escalateHandler, escalateAfter, logger),
		autoAssignEnabled:    autoAssignEnabled,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.autoAssignEnabled {
		if err := jm.courierAssignmentJob.Start(); err != nil {
			return fmt.Errorf("failed to start courier assignment job: %w", err)
		}
	}

	if err := jm.orderEscalationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		if jm.autoAssignEnabled {
			jm.courierAssignmentJob.Stop()
		}
		return fmt.Errorf("failed to start order escalation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderEscalationJob.Stop()
	if jm.autoAssignEnabled {
		jm.courierAssignmentJob.Stop()
	}
}
