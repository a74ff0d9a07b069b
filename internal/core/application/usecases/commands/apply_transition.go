package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// applyTransition runs one lifecycle transition against a target inside a
// single transaction. Target rows are locked before the transition is applied,
// so concurrent staff actions on the same row serialize and the loser fails
// with InvalidTransition against the winner's committed status.
//
// For group targets the transition is all-or-nothing: one refusing sibling
// rolls back the whole group.
func applyTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	target Target,
	transition func(*order.LineItem) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LineItemRepository()
	lines, err := resolveTarget(ctx, repo, target)
	if err != nil {
		return err
	}

	for _, line := range lines {
		if err = transition(line); err != nil {
			return err
		}
	}

	for _, line := range lines {
		if err = repo.Update(ctx, line); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// resolveTarget loads and locks the rows a target addresses.
func resolveTarget(ctx context.Context, repo ports.LineItemRepository, target Target) ([]*order.LineItem, error) {
	if orderID, ok := target.OrderID(); ok {
		line, err := repo.GetForUpdate(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return []*order.LineItem{line}, nil
	}

	groupID, ok := target.GroupID()
	if !ok {
		return nil, ErrTargetIsNotConstructed
	}

	lines, err := repo.GetByGroupForUpdate(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewObjectNotFoundError("groupId", groupID.String())
	}

	return lines, nil
}
