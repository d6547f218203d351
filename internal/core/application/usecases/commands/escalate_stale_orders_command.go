package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrEscalateStaleOrdersCommandIsNotConstructed = errors.New(
		"EscalateStaleOrdersCommand must be created via NewEscalateStaleOrdersCommand constructor",
	)
	ErrEscalationAgeIsInvalid = errors.New("escalation age must be greater than 0")
)

// EscalateStaleOrdersCommand triggers one escalation sweep: every active
// order older than the given age is bumped to URGENT so it surfaces at the
// top of every kitchen queue. Issued periodically by the background job.
type EscalateStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewEscalateStaleOrdersCommand creates a command to run one escalation
// sweep. Validates that the age threshold is positive.
func NewEscalateStaleOrdersCommand(olderThan time.Duration) (EscalateStaleOrdersCommand, error) {
	if olderThan <= 0 {
		return EscalateStaleOrdersCommand{}, ErrEscalationAgeIsInvalid
	}

	return EscalateStaleOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEscalateStaleOrdersCommandIsNotConstructed if validation fails.
func (c EscalateStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrEscalateStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the age beyond which an active order escalates.
func (c EscalateStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
