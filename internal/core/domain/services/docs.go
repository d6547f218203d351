// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fulfillment engine. It
// implements logic that does not naturally belong to a single aggregate root.
//
// The package includes:
//   - DepartmentRouter: maps menu categories to kitchen departments
//   - TicketFactory: partitions an order's items into per-department tickets
//   - QueuePlanner: orders the kitchen queue and computes its statistics
//   - CourierDispatcher: picks a courier for a pending delivery
//
// All services here are pure: they neither persist nor load state. The
// transactional guards around them live in the command handlers.
package services
