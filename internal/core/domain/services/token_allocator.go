package services

import (
	"context"
	"math/rand/v2"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// TokenSource checks and reserves candidate tokens against the live store.
// Implemented by the line-item repository; when called inside a transaction
// the reservation holds until that transaction ends, so two concurrent
// submissions cannot be granted the same free token.
type TokenSource interface {
	// ReserveToken reports whether the token is free among currently stored
	// orders and, if the implementation supports it, reserves the value for
	// the calling transaction.
	ReserveToken(ctx context.Context, token kernel.Token) (bool, error)
}

// TokenAllocator is a domain service that picks the customer-facing token for
// a new order group.
//
// Allocation walks the 3-digit space [kernel.TokenMin, kernel.TokenMax]
// starting from a random offset, taking the first value the TokenSource can
// reserve. The walk visits every value at most once, so a fully occupied
// space is reported as TokenSpaceExhausted rather than looping forever.
//
// Example usage:
//
//	allocator := services.NewTokenAllocator()
//	token, err := allocator.Allocate(ctx, repo)
//	if errors.Is(err, errs.ErrTokenSpaceExhausted) {
//	    // All 900 tokens are held by stored orders
//	    return
//	}
type TokenAllocator struct{}

// NewTokenAllocator creates a new TokenAllocator instance.
func NewTokenAllocator() TokenAllocator {
	return TokenAllocator{}
}

// Allocate returns a token not currently held by any stored order.
//
// Returns:
//   - kernel.Token: the reserved token
//   - error: TokenSpaceExhaustedError when every value in range is in use,
//     or the TokenSource's error if a reservation check fails
func (a TokenAllocator) Allocate(ctx context.Context, source TokenSource) (kernel.Token, error) {
	offset := rand.IntN(kernel.TokenSpaceSize) //nolint:gosec // tokens are not secrets

	for i := 0; i < kernel.TokenSpaceSize; i++ {
		value := kernel.TokenMin + (offset+i)%kernel.TokenSpaceSize

		token, err := kernel.NewToken(value)
		if err != nil {
			return kernel.Token{}, err
		}

		free, err := source.ReserveToken(ctx, token)
		if err != nil {
			return kernel.Token{}, err
		}
		if free {
			return token, nil
		}
	}

	return kernel.Token{}, errs.NewTokenSpaceExhaustedError(kernel.TokenMin, kernel.TokenMax)
}
