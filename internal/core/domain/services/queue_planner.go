package services

import (
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
)

// QueueEntry is one pending or in-progress ticket item as the kitchen
// display sees it: the item enriched with its owning order's number, table,
// priority and timing estimates.
type QueueEntry struct {
	TicketItemID       kernel.UUID
	TicketID           kernel.UUID
	OrderID            kernel.UUID
	OrderNumber        string
	TableNumber        int
	ItemName           string
	Quantity           int
	Notes              string
	Department         kitchen.Department
	Priority           order.Priority
	Status             kitchen.Status
	PreparationMinutes int
	OrderCreatedAt     time.Time
	EstimatedStart     time.Time
	EstimatedEnd       time.Time
}

// QueueStats summarizes the current queue for the kitchen display.
type QueueStats struct {
	TotalItems     int
	UrgentItems    int
	AvgWaitMinutes int
	// WorkloadMinutes is preparation work (prep minutes times quantity)
	// summed per department.
	WorkloadMinutes map[kitchen.Department]int
}

// QueuePlanner computes the ordering and statistics of the kitchen queue.
// Everything here is pure math over queue entries; loading them is the read
// model's job.
type QueuePlanner struct {
	// dispatchLatency models the fixed delay between an order arriving and a
	// station being able to start it, used for the estimated start time.
	dispatchLatency time.Duration
}

// NewQueuePlanner creates a planner with the given fixed dispatch latency.
func NewQueuePlanner(dispatchLatency time.Duration) QueuePlanner {
	return QueuePlanner{dispatchLatency: dispatchLatency}
}

// EstimateWindow returns the estimated start and end time of an item:
// start is the order's creation time plus the dispatch latency, end adds the
// item's preparation time.
func (p QueuePlanner) EstimateWindow(orderCreatedAt time.Time, preparationMinutes int) (time.Time, time.Time) {
	start := orderCreatedAt.Add(p.dispatchLatency)
	end := start.Add(time.Duration(preparationMinutes) * time.Minute)
	return start, end
}

// Sort orders the queue in place: priority descending (URGENT before NORMAL
// before LOW), then order creation time ascending. The sort is stable, so
// entries tied on both keys keep their arrival order.
func (p QueuePlanner) Sort(entries []QueueEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority.Before(entries[j].Priority)
		}
		return entries[i].OrderCreatedAt.Before(entries[j].OrderCreatedAt)
	})
}

// ComputeStats summarizes the queue: total and urgent item counts, the mean
// wait in whole minutes since each entry's order was created, and the summed
// preparation workload per department.
func (p QueuePlanner) ComputeStats(entries []QueueEntry, now time.Time) QueueStats {
	stats := QueueStats{
		TotalItems:      len(entries),
		WorkloadMinutes: make(map[kitchen.Department]int),
	}

	var totalWait time.Duration
	for _, entry := range entries {
		if entry.Priority == order.PriorityUrgent {
			stats.UrgentItems++
		}
		totalWait += now.Sub(entry.OrderCreatedAt)
		stats.WorkloadMinutes[entry.Department] += entry.PreparationMinutes * entry.Quantity
	}

	if len(entries) > 0 {
		avg := totalWait / time.Duration(len(entries))
		stats.AvgWaitMinutes = int(avg.Round(time.Minute) / time.Minute)
	}

	return stats
}
