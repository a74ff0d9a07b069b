package commands

import (
	"context"
)

// ClearOrdersCommandHandler performs the administrative full delete.
// There is no per-row delete anywhere in the system; this handler is the only
// way stored lines are ever destroyed.
type ClearOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClearOrdersCommandHandler creates a handler for the destructive clear.
func NewClearOrdersCommandHandler(uowFactory OrderUoWFactory) ClearOrdersCommandHandler {
	return ClearOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes every stored line inside one transaction.
func (h *ClearOrdersCommandHandler) Handle(ctx context.Context, cmd ClearOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LineItemRepository().DeleteAll(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
