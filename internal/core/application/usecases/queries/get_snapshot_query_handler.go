package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSnapshotQueryHandler dumps the whole store, oldest line first.
type GetSnapshotQueryHandler struct {
	db *gorm.DB
}

// NewGetSnapshotQueryHandler creates a handler for full-store dumps.
func NewGetSnapshotQueryHandler(db *gorm.DB) GetSnapshotQueryHandler {
	return GetSnapshotQueryHandler{db: db}
}

// Handle executes the dump. An empty store returns an empty slice.
func (h GetSnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetSnapshotQuery,
) ([]OrderLineResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderLineColumns + `
		FROM line_items
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderLines(rows)
}
