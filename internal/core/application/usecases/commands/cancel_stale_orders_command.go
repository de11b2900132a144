package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff is required")
)

// CancelStaleOrdersCommand represents a request to cancel every order still
// Pending since before the cutoff. Issued by the background cleanup job on
// behalf of the system.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale pending orders.
// The cutoff must be a non-zero time.
func NewCancelStaleOrdersCommand(cutoff time.Time) (CancelStaleOrdersCommand, error) {
	cancelCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setCutoff(cutoff); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleOrdersCommandIsNotConstructed if validation fails.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the creation-time threshold; Pending orders created before
// it are cancelled.
func (c CancelStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *CancelStaleOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
