package commands

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var (
	ErrOrderItemIsNotConstructed = errors.New(
		"OrderItem must be created via NewOrderItem constructor",
	)
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItem is one (item name, quantity) entry of a submission request.
type OrderItem struct { //nolint:recvcheck //using for validation
	name     string
	quantity int

	guard guard.ConstructorGuard
}

// NewOrderItem creates a submission entry.
// The name must not be empty and the quantity must be positive. The name is
// not checked against the menu here: unknown items are accepted and priced at
// 0 when the order is created.
func NewOrderItem(name string, quantity int) (OrderItem, error) {
	if name == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return OrderItem{
		name:     name,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through the constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// Name returns the requested menu item name.
func (i OrderItem) Name() string {
	return i.name
}

// Quantity returns the requested count.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// CreateOrderCommand represents a customer submission: one or more items
// ordered together under a single token, with an optional preparation note
// and customer name.
//
// Example:
//
//	latte, _ := commands.NewOrderItem("Latte", 2)
//	espresso, _ := commands.NewOrderItem("Espresso", 1)
//	cmd, err := commands.NewCreateOrderCommand(
//	    []commands.OrderItem{latte, espresso}, "oat milk", "Dana")
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed, token %s", result.GroupID, result.Token)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items        []OrderItem
	addons       string
	customerName string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command for one customer submission.
// The item list must not be empty and every entry must have been built via
// NewOrderItem. Addons and customer name are free-form and may be empty.
func NewCreateOrderCommand(items []OrderItem, addons string, customerName string) (CreateOrderCommand, error) {
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	copied := make([]OrderItem, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
		copied[i] = item
	}

	return CreateOrderCommand{
		items:        copied,
		addons:       addons,
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Items returns the submission entries.
func (c CreateOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

// Addons returns the free-form preparation note.
func (c CreateOrderCommand) Addons() string {
	return c.addons
}

// CustomerName returns the free-form customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}
