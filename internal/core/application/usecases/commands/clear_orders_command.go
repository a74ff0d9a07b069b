package commands

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var (
	ErrClearOrdersCommandIsNotConstructed = errors.New(
		"ClearOrdersCommand must be created via NewClearOrdersCommand constructor",
	)
)

// ClearOrdersCommand represents the administrative reset: an irreversible
// delete of every stored order line. It is deliberately a distinct, explicit
// command so no other operation can trigger the wipe implicitly; the admin
// collaborator takes a snapshot first if the data is to be kept.
type ClearOrdersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewClearOrdersCommand creates the destructive clear command.
func NewClearOrdersCommand() ClearOrdersCommand {
	return ClearOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ClearOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClearOrdersCommandIsNotConstructed)
}
