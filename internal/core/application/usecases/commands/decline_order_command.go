package commands

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var (
	ErrDeclineOrderCommandIsNotConstructed = errors.New(
		"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
	)
)

// DeclineOrderCommand represents a staff refusal of an order, either at
// intake (Unapproved) or before serving (Completed). Declined is terminal.
type DeclineOrderCommand struct { //nolint:recvcheck //using for validation
	target Target

	guard guard.ConstructorGuard
}

// NewDeclineOrderCommand creates a command to decline a line or a group.
func NewDeclineOrderCommand(target Target) (DeclineOrderCommand, error) {
	if err := target.Validate(); err != nil {
		return DeclineOrderCommand{}, err
	}

	return DeclineOrderCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

// Target returns what the decline applies to.
func (c DeclineOrderCommand) Target() Target {
	return c.target
}
