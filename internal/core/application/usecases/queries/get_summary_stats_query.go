package queries

import (
	"errors"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var (
	ErrGetSummaryStatsQueryIsNotConstructed = errors.New(
		"GetSummaryStatsQuery must be created via NewGetSummaryStatsQuery constructor",
	)
)

// GetSummaryStatsQuery retrieves per-status order counts for the admin view.
// This is a parameterless query; it folds over the whole store.
type GetSummaryStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSummaryStatsQuery creates the summary statistics query.
func NewGetSummaryStatsQuery() GetSummaryStatsQuery {
	return GetSummaryStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSummaryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetSummaryStatsQueryIsNotConstructed)
}

// GetSummaryStatsQueryResponse carries the count of lines per status and the
// total row count. Every status appears in CountByStatus, zero included.
type GetSummaryStatsQueryResponse struct {
	CountByStatus map[order.Status]int
	Total         int
}
