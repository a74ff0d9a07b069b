package commands_test

import (
	"errors"
	"testing"

	"canteen/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewClearOrdersCommand()

	repo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(repo).Once(),
		repo.On("DeleteAll", mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearOrdersCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClearOrdersCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewClearOrdersCommand()

	repo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(repo).Once(),
		repo.On("DeleteAll", mock.Anything).Return(errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearOrdersCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))

	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestClearOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewClearOrdersCommandHandler(factory)

	err := h.Handle(ctx, commands.ClearOrdersCommand{})

	require.ErrorIs(t, err, commands.ErrClearOrdersCommandIsNotConstructed)
}
