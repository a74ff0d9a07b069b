package queries

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var (
	ErrGetGroupProgressQueryIsNotConstructed = errors.New(
		"GetGroupProgressQuery must be created via NewGetGroupProgressQuery constructor",
	)
)

// GetGroupProgressQuery reports how far along a whole order group is.
// Sibling lines move through the kitchen independently, so their statuses
// can disagree; the group's progress is the least advanced sibling, since
// the order is only as ready as its slowest item.
type GetGroupProgressQuery struct {
	token kernel.Token

	guard guard.ConstructorGuard
}

// NewGetGroupProgressQuery creates a progress query for one token's group.
func NewGetGroupProgressQuery(token kernel.Token) (GetGroupProgressQuery, error) {
	if err := token.Validate(); err != nil {
		return GetGroupProgressQuery{}, err
	}

	return GetGroupProgressQuery{
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetGroupProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetGroupProgressQueryIsNotConstructed)
}

// Token returns the requested customer token.
func (q GetGroupProgressQuery) Token() kernel.Token {
	return q.token
}

// GetGroupProgressQueryResponse carries the group's effective status.
type GetGroupProgressQueryResponse struct {
	Token  kernel.Token
	Status order.Status
}
