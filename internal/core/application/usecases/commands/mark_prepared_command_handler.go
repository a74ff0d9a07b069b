package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// MarkPreparedCommandHandler moves a single Pending line to Completed.
type MarkPreparedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPreparedCommandHandler creates a handler for kitchen completion.
func NewMarkPreparedCommandHandler(uowFactory OrderUoWFactory) MarkPreparedCommandHandler {
	return MarkPreparedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion of one line.
func (h *MarkPreparedCommandHandler) Handle(ctx context.Context, cmd MarkPreparedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	target, err := NewItemTarget(cmd.OrderID())
	if err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, target, func(line *order.LineItem) error {
		return line.MarkPrepared()
	})
}
