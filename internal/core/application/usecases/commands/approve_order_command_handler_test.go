package commands_test

import (
	"errors"
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restoredLine builds a persisted-looking line at the given status.
func restoredLine(t *testing.T, status order.Status) *order.LineItem {
	t.Helper()
	token, err := kernel.NewToken(417)
	require.NoError(t, err)

	line, err := order.RestoreLineItem(
		kernel.NewUUID(), kernel.NewUUID(), token,
		"Latte", 1, "", "Dana", 80, time.Now(), status,
	)
	require.NoError(t, err)
	return line
}

func itemTarget(t *testing.T, line *order.LineItem) commands.Target {
	t.Helper()
	target, err := commands.NewItemTarget(line.ID())
	require.NoError(t, err)
	return target
}

func TestApproveOrderCommandHandler_Handle_SingleLine(t *testing.T) {
	ctx := t.Context()
	line := restoredLine(t, order.Unapproved)
	cmd, err := commands.NewApproveOrderCommand(itemTarget(t, line))
	require.NoError(t, err)

	repo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, line.ID()).Return(line, nil).Once(),
		repo.On("Update", mock.Anything, line).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Pending, line.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_WholeGroup(t *testing.T) {
	ctx := t.Context()
	first := restoredLine(t, order.Unapproved)
	second := restoredLine(t, order.Unapproved)
	groupID := kernel.NewUUID()

	target, err := commands.NewGroupTarget(groupID)
	require.NoError(t, err)
	cmd, err := commands.NewApproveOrderCommand(target)
	require.NoError(t, err)

	repo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(repo).Once(),
		repo.On("GetByGroupForUpdate", mock.Anything, groupID).
			Return([]*order.LineItem{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Pending, first.Status())
	assert.Equal(t, order.Pending, second.Status())
}

// The loser of a concurrent approve/decline sees the winner's committed
// status after the row lock is released and must get InvalidTransition, not
// a silent overwrite.
func TestApproveOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	line := restoredLine(t, order.Declined) // the decline won
	cmd, err := commands.NewApproveOrderCommand(itemTarget(t, line))
	require.NoError(t, err)

	repo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, line.ID()).Return(line, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Declined, line.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// One sibling already past Unapproved fails the whole group without updates.
func TestApproveOrderCommandHandler_Handle_GroupIsAllOrNothing(t *testing.T) {
	ctx := t.Context()
	fresh := restoredLine(t, order.Unapproved)
	already := restoredLine(t, order.Pending)
	groupID := kernel.NewUUID()

	target, err := commands.NewGroupTarget(groupID)
	require.NoError(t, err)
	cmd, err := commands.NewApproveOrderCommand(target)
	require.NoError(t, err)

	repo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(repo).Once(),
		repo.On("GetByGroupForUpdate", mock.Anything, groupID).
			Return([]*order.LineItem{fresh, already}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApproveOrderCommandHandler_Handle_EmptyGroupIsNotFound(t *testing.T) {
	ctx := t.Context()
	groupID := kernel.NewUUID()

	target, err := commands.NewGroupTarget(groupID)
	require.NoError(t, err)
	cmd, err := commands.NewApproveOrderCommand(target)
	require.NoError(t, err)

	repo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(repo).Once(),
		repo.On("GetByGroupForUpdate", mock.Anything, groupID).
			Return([]*order.LineItem{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestApproveOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	line := restoredLine(t, order.Unapproved)
	cmd, err := commands.NewApproveOrderCommand(itemTarget(t, line))
	require.NoError(t, err)

	repo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, line.ID()).Return(line, nil).Once(),
		repo.On("Update", mock.Anything, line).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApproveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewApproveOrderCommandHandler(factory)

	err := h.Handle(ctx, commands.ApproveOrderCommand{})

	require.ErrorIs(t, err, commands.ErrApproveOrderCommandIsNotConstructed)
}
