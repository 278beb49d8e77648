package commands

import (
	"errors"

	"forwarding/internal/pkg/guard"
)

// MarkOverdueInvoicesCommand flags every pending invoice whose due date
// has passed. This batch operation is run periodically by the scheduler.
type MarkOverdueInvoicesCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrMarkOverdueInvoicesCommandIsNotConstructed = errors.New(
		"MarkOverdueInvoicesCommand must be created via NewMarkOverdueInvoicesCommand constructor",
	)
)

// NewMarkOverdueInvoicesCommand creates a command to sweep overdue
// invoices. This is a parameterless command that processes all pending
// invoices past their due date.
func NewMarkOverdueInvoicesCommand() MarkOverdueInvoicesCommand {
	command := MarkOverdueInvoicesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOverdueInvoicesCommandIsNotConstructed if validation fails.
func (c *MarkOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueInvoicesCommandIsNotConstructed)
}
