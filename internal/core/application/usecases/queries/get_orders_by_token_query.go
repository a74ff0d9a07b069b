package queries

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrGetOrdersByTokenQueryIsNotConstructed = errors.New(
		"GetOrdersByTokenQuery must be created via NewGetOrdersByTokenQuery constructor",
	)
)

// GetOrdersByTokenQuery retrieves the order group behind a customer token.
// The token is what the customer holds, so this is the lookup the counter
// runs when someone shows up asking about their order.
type GetOrdersByTokenQuery struct {
	token kernel.Token

	guard guard.ConstructorGuard
}

// NewGetOrdersByTokenQuery creates a query for one token's group.
func NewGetOrdersByTokenQuery(token kernel.Token) (GetOrdersByTokenQuery, error) {
	if err := token.Validate(); err != nil {
		return GetOrdersByTokenQuery{}, err
	}

	return GetOrdersByTokenQuery{
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByTokenQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByTokenQueryIsNotConstructed)
}

// Token returns the requested customer token.
func (q GetOrdersByTokenQuery) Token() kernel.Token {
	return q.token
}

// GetOrdersByTokenQueryResponse represents one order group: its lines in
// creation order and the group subtotal, the sum of every line total.
type GetOrdersByTokenQueryResponse struct {
	GroupID  kernel.UUID
	Token    kernel.Token
	Lines    []OrderLineResponse
	Subtotal int
}
