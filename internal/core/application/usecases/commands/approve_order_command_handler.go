package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// ApproveOrderCommandHandler moves Unapproved lines to Pending.
// Target rows are locked for the duration of the transaction; when two staff
// members act on the same row at once, one wins and the other receives an
// InvalidTransition error reflecting the winner's committed status.
//
// Example:
//
//	handler := NewApproveOrderCommandHandler(uowFactory)
//	target, _ := commands.NewGroupTarget(groupID)
//	cmd, _ := commands.NewApproveOrderCommand(target)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrInvalidTransition: the group already left Unapproved
//	    return err
//	}
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveOrderCommandHandler creates a handler for approval operations.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval. Group targets are all-or-nothing: if any
// sibling line is not Unapproved the whole group is left untouched.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.Target(), func(line *order.LineItem) error {
		return line.Approve()
	})
}
