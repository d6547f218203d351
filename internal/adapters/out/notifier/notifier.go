// Package notifier implements the order lifecycle announcements.
// The current implementation writes structured log records; swapping in a
// payment webhook or a message broker only means implementing the same
// port.
package notifier

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
)

// LogOrderNotifier announces order milestones through slog.
type LogOrderNotifier struct {
	logger *slog.Logger
}

// NewLogOrderNotifier creates a notifier writing to the given logger.
func NewLogOrderNotifier(logger *slog.Logger) *LogOrderNotifier {
	return &LogOrderNotifier{logger: logger}
}

// OrderCompleted logs a completed or delivered order.
func (n *LogOrderNotifier) OrderCompleted(ctx context.Context, aggregate *order.Order) {
	n.logger.InfoContext(ctx, "order completed",
		"orderId", aggregate.ID().String(),
		"number", aggregate.Number(),
		"status", aggregate.Status().String(),
		"total", aggregate.Total(),
	)
}

// OrderCancelled logs a cancelled order.
func (n *LogOrderNotifier) OrderCancelled(ctx context.Context, aggregate *order.Order) {
	n.logger.InfoContext(ctx, "order cancelled",
		"orderId", aggregate.ID().String(),
		"number", aggregate.Number(),
	)
}
