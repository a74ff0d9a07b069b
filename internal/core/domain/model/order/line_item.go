package order

import (
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through NewLineItem or RestoreLineItem. This ensures all lines
	// are properly validated.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")
)

// LineItem represents one (item, quantity) entry of a customer submission.
// It is the aggregate root and the unit of status tracking: group-level
// actions are applied to every sibling line sharing the same group ID.
//
// LineItem follows these invariants:
//   - Must have valid unique, group, and token identifiers
//   - Item name must not be empty; quantity must be positive
//   - Unit price and line total are computed at creation and never change
//   - Status transitions follow the Status state machine
//   - Can only be created through NewLineItem or RestoreLineItem
//
// All fields except status are immutable after construction.
type LineItem struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// groupID is shared by all lines submitted together
	groupID kernel.UUID

	// token is the customer-facing reference shared by the group
	token kernel.Token

	// itemName is the menu item as submitted by the customer
	itemName string

	// quantity is the ordered count (always positive)
	quantity int

	// addons is a free-form preparation note
	addons string

	// customerName is a free-form name for calling out the order
	customerName string

	// unitPrice is the menu price captured at creation (0 for unknown items)
	unitPrice int

	// createdAt is the insertion timestamp
	createdAt time.Time

	// status is the current lifecycle state
	status Status

	// isConstructed ensures the line was created via a constructor
	isConstructed bool
}

// NewLineItem creates a new LineItem in the Unapproved status.
// This is the only way to create a line for a fresh submission; all
// invariants are validated and the given creation time is recorded.
//
// Parameters:
//   - id: Unique identifier for the line
//   - groupID: Identifier shared by all lines of the submission
//   - token: The group's customer-facing token
//   - itemName: Menu item name (must not be empty)
//   - quantity: Ordered count (must be positive)
//   - addons: Free-form preparation note (may be empty)
//   - customerName: Free-form customer name (may be empty)
//   - unitPrice: Menu price per unit at creation time (must not be negative)
//   - createdAt: Insertion timestamp from the caller's clock
//
// Returns the created line, or a validation error if any parameter is invalid.
func NewLineItem(
	id kernel.UUID,
	groupID kernel.UUID,
	token kernel.Token,
	itemName string,
	quantity int,
	addons string,
	customerName string,
	unitPrice int,
	createdAt time.Time,
) (*LineItem, error) {
	line := &LineItem{
		addons:        addons,
		customerName:  customerName,
		status:        Unapproved,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setGroupID(groupID),
		line.setToken(token),
		line.setItemName(itemName),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLineItem reconstructs a LineItem from persistence with an explicit
// status. Used by repositories only; new submissions must go through
// NewLineItem so they always start at Unapproved.
func RestoreLineItem(
	id kernel.UUID,
	groupID kernel.UUID,
	token kernel.Token,
	itemName string,
	quantity int,
	addons string,
	customerName string,
	unitPrice int,
	createdAt time.Time,
	status Status,
) (*LineItem, error) {
	line, err := NewLineItem(id, groupID, token, itemName, quantity, addons, customerName, unitPrice, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	line.status = status

	return line, nil
}

// Validate ensures the LineItem instance was properly constructed.
// Returns ErrLineItemIsNotConstructed for zero-value or directly
// instantiated structs.
func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two lines by their unique identifiers.
func (l *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the line's unique identifier.
func (l *LineItem) ID() kernel.UUID {
	return l.id
}

// GroupID returns the identifier shared by all lines of the submission.
func (l *LineItem) GroupID() kernel.UUID {
	return l.groupID
}

// Token returns the group's customer-facing token.
func (l *LineItem) Token() kernel.Token {
	return l.token
}

// ItemName returns the ordered menu item name.
func (l *LineItem) ItemName() string {
	return l.itemName
}

// Quantity returns the ordered count.
func (l *LineItem) Quantity() int {
	return l.quantity
}

// Addons returns the free-form preparation note.
func (l *LineItem) Addons() string {
	return l.addons
}

// CustomerName returns the free-form customer name.
func (l *LineItem) CustomerName() string {
	return l.customerName
}

// UnitPrice returns the per-unit price captured at creation.
func (l *LineItem) UnitPrice() int {
	return l.unitPrice
}

// LineTotal returns unit price times quantity, as fixed at creation.
func (l *LineItem) LineTotal() int {
	return l.unitPrice * l.quantity
}

// CreatedAt returns the insertion timestamp.
func (l *LineItem) CreatedAt() time.Time {
	return l.createdAt
}

// Status returns the current lifecycle state of the line.
func (l *LineItem) Status() Status {
	return l.status
}

// Approve moves the line from Unapproved to Pending.
// Returns an InvalidTransitionError and leaves the line unchanged if the
// current status is anything else.
func (l *LineItem) Approve() error {
	newStatus, err := l.status.Approve()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// Decline moves the line to Declined from Unapproved or Completed.
// Returns an InvalidTransitionError and leaves the line unchanged otherwise.
func (l *LineItem) Decline() error {
	newStatus, err := l.status.Decline()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// MarkPrepared moves the line from Pending to Completed.
// Returns an InvalidTransitionError and leaves the line unchanged otherwise.
func (l *LineItem) MarkPrepared() error {
	newStatus, err := l.status.MarkPrepared()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// MarkDelivered moves the line from Completed to Delivered.
// Returns an InvalidTransitionError and leaves the line unchanged otherwise.
func (l *LineItem) MarkDelivered() error {
	newStatus, err := l.status.MarkDelivered()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

func (l *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineItem) setGroupID(groupID kernel.UUID) error {
	if err := groupID.Validate(); err != nil {
		return err
	}
	l.groupID = groupID
	return nil
}

func (l *LineItem) setToken(token kernel.Token) error {
	if err := token.Validate(); err != nil {
		return err
	}
	l.token = token
	return nil
}

func (l *LineItem) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	l.itemName = itemName
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnitPrice(unitPrice int) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%d is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *LineItem) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	l.createdAt = createdAt
	return nil
}
