package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

// LineItemRepository defines the persistence contract for order lines.
// Readers never observe a partially written batch: all lines of a group are
// stored or none are. Multi-row reads are ordered by creation time ascending.
type LineItemRepository interface {
	// AddBatch persists all given lines as one atomic batch.
	// Either every line is stored or none of them.
	AddBatch(ctx context.Context, lines []*order.LineItem) error

	// Update persists the current status of an existing line.
	// Status is the only mutable column; everything else is written once by
	// AddBatch and never touched again.
	Update(ctx context.Context, line *order.LineItem) error

	// Get retrieves a line by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.LineItem, error)

	// GetForUpdate retrieves a line and locks its row for the remainder of
	// the surrounding transaction. Concurrent staff actions on the same line
	// serialize on this lock; the loser re-reads the winner's status.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.LineItem, error)

	// GetByGroupForUpdate retrieves all lines of a group ordered by creation
	// time and locks their rows for the remainder of the surrounding
	// transaction. Used by group-level actions to apply one transition to
	// every sibling atomically.
	GetByGroupForUpdate(ctx context.Context, groupID kernel.UUID) ([]*order.LineItem, error)

	// GetAllByStatus retrieves all lines in the given status, ordered by
	// creation time ascending.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.LineItem, error)

	// GetAllByToken retrieves all lines currently holding the given token,
	// ordered by creation time ascending.
	GetAllByToken(ctx context.Context, token kernel.Token) ([]*order.LineItem, error)

	// ReserveToken reports whether the token is free among stored orders and
	// reserves it for the calling transaction, so a concurrent submission
	// cannot take the same value before this transaction ends.
	ReserveToken(ctx context.Context, token kernel.Token) (bool, error)

	// DeleteAll irreversibly removes every stored line. Only the admin
	// clear operation may call this.
	DeleteAll(ctx context.Context) error
}
