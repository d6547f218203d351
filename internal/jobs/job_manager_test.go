package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUoW fails on Begin so a tick that fires during a test stays inert.
type stubUoW struct{}

func (stubUoW) Begin(context.Context) error { return errors.New("no database in test") }
func (stubUoW) Commit(context.Context) error { return nil }
func (stubUoW) Rollback(context.Context) error { return nil }
func (stubUoW) OrderRepository() ports.OrderRepository { return nil }
func (stubUoW) DeliveryRepository() ports.DeliveryRepository { return nil }
func (stubUoW) CourierRepository() ports.CourierRepository { return nil }
func (stubUoW) KitchenTicketRepository() ports.KitchenTicketRepository { return nil }

type stubDeliveryUoWFactory struct{}

func (stubDeliveryUoWFactory) Create() commands.DeliveryUoW { return stubUoW{} }

type stubOrderUoWFactory struct{}

func (stubOrderUoWFactory) Create() commands.OrderUoW { return stubUoW{} }

func newTestJobManager(autoAssignEnabled bool) *JobManager {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	autoAssign := commands.NewAutoAssignCouriersCommandHandler(
		stubDeliveryUoWFactory{}, services.NewCourierDispatcher())
	escalate := commands.NewEscalateStaleOrdersCommandHandler(stubOrderUoWFactory{})

	return NewJobManager(autoAssign, escalate, 30*time.Minute, autoAssignEnabled, logger)
}

func TestJobManager_AutoAssignDisabled_DoesNotScheduleAssignment(t *testing.T) {
	jm := newTestJobManager(false)

	require.NoError(t, jm.StartAll())
	defer jm.StopAll()

	assert.Empty(t, jm.courierAssignmentJob.cron.Entries())
	assert.Len(t, jm.orderEscalationJob.cron.Entries(), 1)
}

func TestJobManager_AutoAssignEnabled_SchedulesBothJobs(t *testing.T) {
	jm := newTestJobManager(true)

	require.NoError(t, jm.StartAll())
	defer jm.StopAll()

	assert.Len(t, jm.courierAssignmentJob.cron.Entries(), 1)
	assert.Len(t, jm.orderEscalationJob.cron.Entries(), 1)
}
