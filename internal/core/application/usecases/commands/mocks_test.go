package commands_test

import (
	"context"
	"errors"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) AddBatch(ctx context.Context, lines []*order.LineItem) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

func (m *MockLineItemRepository) Update(ctx context.Context, line *order.LineItem) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockLineItemRepository) Get(_ context.Context, _ kernel.UUID) (*order.LineItem, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockLineItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.LineItem, error) {
	args := m.Called(ctx, id)
	if line, ok := args.Get(0).(*order.LineItem); ok {
		return line, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLineItemRepository) GetByGroupForUpdate(
	ctx context.Context,
	groupID kernel.UUID,
) ([]*order.LineItem, error) {
	args := m.Called(ctx, groupID)
	if lines, ok := args.Get(0).([]*order.LineItem); ok {
		return lines, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLineItemRepository) GetAllByStatus(_ context.Context, _ order.Status) ([]*order.LineItem, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockLineItemRepository) GetAllByToken(_ context.Context, _ kernel.Token) ([]*order.LineItem, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockLineItemRepository) ReserveToken(ctx context.Context, token kernel.Token) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockLineItemRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
