package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrMarkPreparedCommandIsNotConstructed = errors.New(
		"MarkPreparedCommand must be created via NewMarkPreparedCommand constructor",
	)
)

// MarkPreparedCommand represents the kitchen finishing one line: Pending to
// Completed. Preparation is per item, so this command addresses a single
// line, never a group.
type MarkPreparedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPreparedCommand creates a command to mark one line prepared.
func NewMarkPreparedCommand(orderID kernel.UUID) (MarkPreparedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkPreparedCommand{}, err
	}

	return MarkPreparedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPreparedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPreparedCommandIsNotConstructed)
}

// OrderID returns the line the kitchen finished.
func (c MarkPreparedCommand) OrderID() kernel.UUID {
	return c.orderID
}
