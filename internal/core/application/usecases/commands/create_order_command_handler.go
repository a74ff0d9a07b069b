package commands

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
)

// CreateOrderResult reports the identifiers assigned to a new submission.
type CreateOrderResult struct {
	// GroupID identifies the submission; every line carries it.
	GroupID kernel.UUID

	// Token is the customer-facing 3-digit reference for the group.
	Token kernel.Token
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Allocates the group's token, prices each line from the menu, and inserts
// every line as one atomic batch at Unapproved status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, menu.DefaultMenu(), time.Now)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Customer is told result.Token; staff see the group as Unapproved
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	menu       menu.Menu
	allocator  services.TokenAllocator
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence, the venue menu
// for pricing, and a clock for the creation timestamp.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, venueMenu menu.Menu, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		menu:       venueMenu,
		allocator:  services.NewTokenAllocator(),
		clock:      clock,
	}
}

// Handle processes the submission.
// Token allocation and the batch insert run in one transaction, so either the
// whole group is stored under its token or nothing is. Unknown menu items are
// priced at 0 rather than rejected.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}
	if err := h.menu.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LineItemRepository()

	token, err := h.allocator.Allocate(ctx, repo)
	if err != nil {
		return CreateOrderResult{}, err
	}

	groupID := kernel.NewUUID()
	createdAt := h.clock()

	lines := make([]*order.LineItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		line, lineErr := order.NewLineItem(
			kernel.NewUUID(),
			groupID,
			token,
			item.Name(),
			item.Quantity(),
			cmd.Addons(),
			cmd.CustomerName(),
			h.menu.PriceOf(item.Name()),
			createdAt,
		)
		if lineErr != nil {
			return CreateOrderResult{}, lineErr
		}
		lines = append(lines, line)
	}

	if err = repo.AddBatch(ctx, lines); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{GroupID: groupID, Token: token}, nil
}
