// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"
	"time"

	"canteen/internal/core/ports"
)

// Clock supplies the timestamp recorded on new order lines. The composition
// root wires time.Now; tests substitute a fixed instant.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across batch and group operations.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LineItemRepoFactory provides access to the line-item repository within a transaction.
	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		LineItemRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
