package queries

import (
	"errors"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves every order line in one lifecycle status.
// Each staff view polls its own status partition: intake watches Unapproved,
// the kitchen Pending, the counter Completed.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Pending)
//	if err != nil {
//	    return err
//	}
//
//	lines, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for one status partition.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the requested status partition.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}
