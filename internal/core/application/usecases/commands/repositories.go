// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// KitchenRepoFactory provides access to the kitchen ticket repository within a transaction.
	KitchenRepoFactory interface {
		KitchenTicketRepository() ports.KitchenTicketRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// TicketingUoW manages transactions spanning orders and kitchen tickets.
	// Used by ticket creation, ticket item advancement and reprioritization.
	TicketingUoW interface {
		TxManager
		OrderRepoFactory
		KitchenRepoFactory
	}

	// TicketingUoWFactory creates new ticketing unit of work instances.
	TicketingUoWFactory interface {
		Create() TicketingUoW
	}

	// DeliveryUoW manages transactions spanning orders, deliveries and couriers.
	// Used by delivery creation, courier assignment and delivery advancement.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		CourierRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// UoW manages transactions across every aggregate of the engine.
	// Used by commands that cascade through orders, tickets, deliveries
	// and couriers at once, such as order cancellation.
	UoW interface {
		TxManager
		OrderRepoFactory
		KitchenRepoFactory
		DeliveryRepoFactory
		CourierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
