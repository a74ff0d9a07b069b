package queries

import (
	"context"

	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersByTokenQueryHandler resolves a customer token to its order group.
// Tokens are unique among stored rows, so the matching lines always share one
// group identifier.
type GetOrdersByTokenQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByTokenQueryHandler creates a handler for token lookups.
func NewGetOrdersByTokenQueryHandler(db *gorm.DB) GetOrdersByTokenQueryHandler {
	return GetOrdersByTokenQueryHandler{db: db}
}

// Handle executes the lookup. A token held by no stored row is ObjectNotFound,
// unlike an empty status partition: the customer is asking about a specific
// order and deserves a definitive answer.
func (h GetOrdersByTokenQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByTokenQuery,
) (GetOrdersByTokenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersByTokenQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderLineColumns+`
		FROM line_items
		WHERE token = ?
		ORDER BY created_at, id
	`, query.Token().String()).Rows()
	if err != nil {
		return GetOrdersByTokenQueryResponse{}, err
	}
	defer rows.Close()

	lines, err := scanOrderLines(rows)
	if err != nil {
		return GetOrdersByTokenQueryResponse{}, err
	}
	if len(lines) == 0 {
		return GetOrdersByTokenQueryResponse{}, errs.NewObjectNotFoundError("token", query.Token().String())
	}

	subtotal := 0
	for _, line := range lines {
		subtotal += line.LineTotal
	}

	return GetOrdersByTokenQueryResponse{
		GroupID:  lines[0].GroupID,
		Token:    query.Token(),
		Lines:    lines,
		Subtotal: subtotal,
	}, nil
}
