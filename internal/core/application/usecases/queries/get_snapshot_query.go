package queries

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var (
	ErrGetSnapshotQueryIsNotConstructed = errors.New(
		"GetSnapshotQuery must be created via NewGetSnapshotQuery constructor",
	)
)

// GetSnapshotQuery retrieves every stored line in creation order.
// The admin export runs this before writing the CSV download, and before a
// destructive clear when the data is to be kept.
type GetSnapshotQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSnapshotQuery creates the full-dump query.
func NewGetSnapshotQuery() GetSnapshotQuery {
	return GetSnapshotQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetSnapshotQueryIsNotConstructed)
}
