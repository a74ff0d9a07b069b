package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetGroupProgressQueryHandler computes a group's effective status as the
// minimum-rank status among its lines. A declined sibling ranks below every
// live status and therefore pins the group on Declined.
type GetGroupProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetGroupProgressQueryHandler creates a handler for group progress reads.
func NewGetGroupProgressQueryHandler(db *gorm.DB) GetGroupProgressQueryHandler {
	return GetGroupProgressQueryHandler{db: db}
}

// Handle executes the progress read. An unknown token is ObjectNotFound.
func (h GetGroupProgressQueryHandler) Handle(
	ctx context.Context,
	query GetGroupProgressQuery,
) (GetGroupProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetGroupProgressQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM line_items
		WHERE token = ?
	`, query.Token().String()).Rows()
	if err != nil {
		return GetGroupProgressQueryResponse{}, err
	}
	defer rows.Close()

	var (
		found   bool
		slowest order.Status
		scanned string
	)

	for rows.Next() {
		if err = rows.Scan(&scanned); err != nil {
			return GetGroupProgressQueryResponse{}, err
		}

		status, statusErr := order.StatusFromString(scanned)
		if statusErr != nil {
			return GetGroupProgressQueryResponse{}, statusErr
		}

		if !found || status.Rank() < slowest.Rank() {
			slowest = status
		}
		found = true
	}

	if err = rows.Err(); err != nil {
		return GetGroupProgressQueryResponse{}, err
	}

	if !found {
		return GetGroupProgressQueryResponse{}, errs.NewObjectNotFoundError("token", query.Token().String())
	}

	return GetGroupProgressQueryResponse{
		Token:  query.Token(),
		Status: slowest,
	}, nil
}
