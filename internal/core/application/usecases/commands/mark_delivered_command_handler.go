package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// MarkDeliveredCommandHandler moves Completed lines to Delivered.
// A group is only deliverable once every sibling is Completed; a slower
// sibling fails the whole group with InvalidTransition.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery operations.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.Target(), func(line *order.LineItem) error {
		return line.MarkDelivered()
	})
}
