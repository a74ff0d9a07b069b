// Package menu provides the static price table consulted when orders are
// created. Prices are captured onto each order line at creation time, so
// later edits to the menu never alter stored orders.
package menu

import (
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

// ErrMenuIsNotConstructed is returned when attempting to use an improperly
// initialized Menu. Menus must be created via NewMenu or DefaultMenu.
var ErrMenuIsNotConstructed = errs.NewValueIsRequiredError(
	"menu must be created via NewMenu or DefaultMenu constructors")

// Menu is an immutable item-name to unit-price table.
//
// Lookup is deliberately lenient: an item missing from the table prices at 0
// rather than failing the order. The venue takes whatever is written on the
// slip and sorts the price out at the counter; this mirrors the documented
// behavior of the system and is pinned by tests, not a bug to fix.
type Menu struct { //nolint:recvcheck //using for validation
	prices map[string]int
	guard  guard.ConstructorGuard
}

// NewMenu creates a Menu from an item-name to unit-price table.
// Prices must not be negative. The input map is copied, so later mutation of
// the argument does not affect the menu.
func NewMenu(prices map[string]int) (Menu, error) {
	copied := make(map[string]int, len(prices))
	for name, price := range prices {
		if name == "" {
			return Menu{}, errs.NewValueIsRequiredError("menu item name")
		}
		if price < 0 {
			return Menu{}, errs.NewValueIsInvalidError("menu price for " + name)
		}
		copied[name] = price
	}

	return Menu{
		prices: copied,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// DefaultMenu returns the venue's built-in price table.
func DefaultMenu() Menu {
	m, _ := NewMenu(map[string]int{
		"Latte":         80,
		"Espresso":      60,
		"Cappuccino":    80,
		"Americano":     65,
		"Hot Chocolate": 70,
		"Iced Tea":      50,
		"Croissant":     55,
		"Sandwich":      95,
		"Brownie":       60,
	})
	return m
}

// Validate checks if the Menu was properly constructed using a constructor.
func (m Menu) Validate() error {
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

// PriceOf returns the unit price for an item name.
// Unknown items return 0 (lenient pricing, see the type comment).
func (m Menu) PriceOf(itemName string) int {
	return m.prices[itemName]
}

// Items returns the item names on the menu. Order is unspecified.
func (m Menu) Items() []string {
	items := make([]string, 0, len(m.prices))
	for name := range m.prices {
		items = append(items, name)
	}
	return items
}
