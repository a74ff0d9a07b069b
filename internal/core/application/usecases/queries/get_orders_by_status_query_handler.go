package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler reads one status partition from the store.
// Results come back ordered by creation time ascending so each staff view
// shows the oldest waiting order first.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status partition reads.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. An empty partition returns an empty slice, not
// an error.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderLineResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderLineColumns+`
		FROM line_items
		WHERE status = ?
		ORDER BY created_at, id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderLines(rows)
}
