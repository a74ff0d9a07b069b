package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetSummaryStatsQueryHandler folds the store into per-status counts.
type GetSummaryStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetSummaryStatsQueryHandler creates a handler for summary statistics.
func NewGetSummaryStatsQueryHandler(db *gorm.DB) GetSummaryStatsQueryHandler {
	return GetSummaryStatsQueryHandler{db: db}
}

// Handle executes the fold. Statuses with no rows are reported as zero so
// callers can render a complete table without knowing the vocabulary.
func (h GetSummaryStatsQueryHandler) Handle(
	ctx context.Context,
	query GetSummaryStatsQuery,
) (GetSummaryStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSummaryStatsQueryResponse{}, err
	}

	counts := make(map[order.Status]int, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		counts[status] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM line_items
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetSummaryStatsQueryResponse{}, err
	}
	defer rows.Close()

	total := 0

	for rows.Next() {
		var (
			scanned string
			count   int
		)
		if err = rows.Scan(&scanned, &count); err != nil {
			return GetSummaryStatsQueryResponse{}, err
		}

		status, statusErr := order.StatusFromString(scanned)
		if statusErr != nil {
			return GetSummaryStatsQueryResponse{}, statusErr
		}

		counts[status] = count
		total += count
	}

	if err = rows.Err(); err != nil {
		return GetSummaryStatsQueryResponse{}, err
	}

	return GetSummaryStatsQueryResponse{
		CountByStatus: counts,
		Total:         total,
	}, nil
}
