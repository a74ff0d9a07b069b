package cmd

import (
	"time"

	"canteen/internal/adapters/out/postgres"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), menu.DefaultMenu(), time.Now)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	return commands.NewDeclineOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkPreparedCommandHandler() commands.MarkPreparedCommandHandler {
	return commands.NewMarkPreparedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClearOrdersCommandHandler() commands.ClearOrdersCommandHandler {
	return commands.NewClearOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByTokenQueryHandler() queries.GetOrdersByTokenQueryHandler {
	return queries.NewGetOrdersByTokenQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetGroupProgressQueryHandler() queries.GetGroupProgressQueryHandler {
	return queries.NewGetGroupProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSummaryStatsQueryHandler() queries.GetSummaryStatsQueryHandler {
	return queries.NewGetSummaryStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSnapshotQueryHandler() queries.GetSnapshotQueryHandler {
	return queries.NewGetSnapshotQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
