package commands

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var (
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
)

// MarkDeliveredCommand represents the counter handing an order to the
// customer: Completed to Delivered, for one line or a whole group.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	target Target

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark a line or group delivered.
func NewMarkDeliveredCommand(target Target) (MarkDeliveredCommand, error) {
	if err := target.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// Target returns what the delivery applies to.
func (c MarkDeliveredCommand) Target() Target {
	return c.target
}
