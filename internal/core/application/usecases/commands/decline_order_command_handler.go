package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// DeclineOrderCommandHandler moves lines to Declined from Unapproved or
// Completed. Shares the locking and group atomicity rules of approval.
type DeclineOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeclineOrderCommandHandler creates a handler for decline operations.
func NewDeclineOrderCommandHandler(uowFactory OrderUoWFactory) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decline. Lines in Pending or a terminal status refuse
// the transition, which for group targets rolls back the whole group.
func (h *DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.Target(), func(line *order.LineItem) error {
		return line.Decline()
	})
}
