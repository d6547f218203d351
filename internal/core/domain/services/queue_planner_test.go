package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queueEntry(name string, priority order.Priority, createdAt time.Time) services.QueueEntry {
	return services.QueueEntry{
		TicketItemID:       kernel.NewUUID(),
		TicketID:           kernel.NewUUID(),
		OrderID:            kernel.NewUUID(),
		OrderNumber:        "ORD-1001",
		ItemName:           name,
		Quantity:           1,
		Department:         kitchen.DepartmentGrill,
		Priority:           priority,
		Status:             kitchen.StatusPending,
		PreparationMinutes: 10,
		OrderCreatedAt:     createdAt,
	}
}

func TestQueuePlanner_Sort(t *testing.T) {
	planner := services.NewQueuePlanner(15 * time.Minute)
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should order by priority then by order age", func(t *testing.T) {
		entries := []services.QueueEntry{
			queueEntry("normal late", order.PriorityNormal, base.Add(10*time.Minute)),
			queueEntry("low", order.PriorityLow, base),
			queueEntry("urgent", order.PriorityUrgent, base.Add(20*time.Minute)),
			queueEntry("normal early", order.PriorityNormal, base),
		}

		planner.Sort(entries)

		assert.Equal(t, "urgent", entries[0].ItemName)
		assert.Equal(t, "normal early", entries[1].ItemName)
		assert.Equal(t, "normal late", entries[2].ItemName)
		assert.Equal(t, "low", entries[3].ItemName)
	})

	t.Run("should keep arrival order for ties", func(t *testing.T) {
		first := queueEntry("first", order.PriorityNormal, base)
		second := queueEntry("second", order.PriorityNormal, base)
		entries := []services.QueueEntry{first, second}

		planner.Sort(entries)

		assert.Equal(t, "first", entries[0].ItemName)
		assert.Equal(t, "second", entries[1].ItemName)
	})
}

func TestQueuePlanner_EstimateWindow(t *testing.T) {
	planner := services.NewQueuePlanner(15 * time.Minute)
	createdAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	start, end := planner.EstimateWindow(createdAt, 20)

	assert.Equal(t, createdAt.Add(15*time.Minute), start)
	assert.Equal(t, createdAt.Add(35*time.Minute), end)
}

func TestQueuePlanner_ComputeStats(t *testing.T) {
	planner := services.NewQueuePlanner(15 * time.Minute)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should summarize counts, wait and workload", func(t *testing.T) {
		urgent := queueEntry("urgent", order.PriorityUrgent, now.Add(-30*time.Minute))
		urgent.Department = kitchen.DepartmentGrill
		urgent.PreparationMinutes = 12
		urgent.Quantity = 2

		normal := queueEntry("normal", order.PriorityNormal, now.Add(-10*time.Minute))
		normal.Department = kitchen.DepartmentCold
		normal.PreparationMinutes = 5
		normal.Quantity = 1

		stats := planner.ComputeStats([]services.QueueEntry{urgent, normal}, now)

		assert.Equal(t, 2, stats.TotalItems)
		assert.Equal(t, 1, stats.UrgentItems)
		// (30 + 10) / 2
		assert.Equal(t, 20, stats.AvgWaitMinutes)
		assert.Equal(t, 24, stats.WorkloadMinutes[kitchen.DepartmentGrill])
		assert.Equal(t, 5, stats.WorkloadMinutes[kitchen.DepartmentCold])
	})

	t.Run("should sum workload per department", func(t *testing.T) {
		first := queueEntry("first", order.PriorityNormal, now)
		first.PreparationMinutes = 10
		second := queueEntry("second", order.PriorityNormal, now)
		second.PreparationMinutes = 7

		stats := planner.ComputeStats([]services.QueueEntry{first, second}, now)

		assert.Equal(t, 17, stats.WorkloadMinutes[kitchen.DepartmentGrill])
	})

	t.Run("should return zeroed stats for an empty queue", func(t *testing.T) {
		stats := planner.ComputeStats(nil, now)

		assert.Equal(t, 0, stats.TotalItems)
		assert.Equal(t, 0, stats.UrgentItems)
		assert.Equal(t, 0, stats.AvgWaitMinutes)
		require.NotNil(t, stats.WorkloadMinutes)
		assert.Empty(t, stats.WorkloadMinutes)
	})
}
