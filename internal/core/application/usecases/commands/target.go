package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrTargetIsNotConstructed = errors.New(
		"Target must be created via NewItemTarget or NewGroupTarget constructor",
	)
)

// Target identifies what a staff action applies to: a single order line or a
// whole group. Group targets apply the same transition to every sibling line
// atomically; if one line refuses the transition the whole action fails.
//
// Example:
//
//	target, err := commands.NewGroupTarget(groupID)
//	if err != nil {
//	    return err
//	}
//	cmd, err := commands.NewApproveOrderCommand(target)
type Target struct { //nolint:recvcheck //using for validation
	orderID *kernel.UUID
	groupID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewItemTarget creates a Target addressing one order line.
func NewItemTarget(orderID kernel.UUID) (Target, error) {
	if err := orderID.Validate(); err != nil {
		return Target{}, err
	}

	return Target{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewGroupTarget creates a Target addressing every line of an order group.
func NewGroupTarget(groupID kernel.UUID) (Target, error) {
	if err := groupID.Validate(); err != nil {
		return Target{}, err
	}

	return Target{
		groupID: &groupID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the target was created through a constructor.
func (t Target) Validate() error {
	return t.guard.Validate(ErrTargetIsNotConstructed)
}

// OrderID returns the addressed line identifier, if this is an item target.
func (t Target) OrderID() (kernel.UUID, bool) {
	if t.orderID == nil {
		return kernel.UUID{}, false
	}
	return *t.orderID, true
}

// GroupID returns the addressed group identifier, if this is a group target.
func (t Target) GroupID() (kernel.UUID, bool) {
	if t.groupID == nil {
		return kernel.UUID{}, false
	}
	return *t.groupID, true
}
