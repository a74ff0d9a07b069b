// Package order provides domain entities and business logic for tracking
// food and drink orders in the canteen system. It implements the LineItem
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - LineItem: The aggregate root for one (item, quantity) entry of a customer submission
//   - Status: A state machine that enforces valid lifecycle transitions
//
// Key business rules:
//   - Every line belongs to exactly one group and carries the group's token
//   - Quantity must be positive; item name is matched against the menu at creation
//   - Unit price and line total are fixed at creation and never change
//   - Status follows Unapproved -> Pending -> Completed -> Delivered, with
//     Declined reachable from Unapproved and Completed
//   - Delivered and Declined are terminal; rejected transitions leave the row unchanged
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
