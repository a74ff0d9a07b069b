package commands

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var (
	ErrApproveOrderCommandIsNotConstructed = errors.New(
		"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
	)
)

// ApproveOrderCommand represents a staff request to accept an order: the
// targeted line (or every line of the targeted group) moves from Unapproved
// to Pending. Payment is taken out-of-band before staff issue this command.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	target Target

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve a line or a group.
func NewApproveOrderCommand(target Target) (ApproveOrderCommand, error) {
	if err := target.Validate(); err != nil {
		return ApproveOrderCommand{}, err
	}

	return ApproveOrderCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// Target returns what the approval applies to.
func (c ApproveOrderCommand) Target() Target {
	return c.target
}
