package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/lineitemrepo"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&lineitemrepo.LineItemDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE line_items").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.LineItemRepository())
	suite.NotNil(uow2.LineItemRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_BatchWithinTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	lines := suite.createTestGroup(345, 2)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.LineItemRepository().AddBatch(ctx, lines)
	suite.Require().NoError(err)

	// Visible inside the transaction
	retrieved, err := uow.LineItemRepository().Get(ctx, lines[0].ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(lines[0].ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible to a new unit of work after commit
	newUow := suite.factory.Create()
	retrieved, err = newUow.LineItemRepository().Get(ctx, lines[1].ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(lines[1].ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	lines := suite.createTestGroup(346, 2)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.LineItemRepository().AddBatch(ctx, lines)
	suite.Require().NoError(err)

	_, err = uow.LineItemRepository().Get(ctx, lines[0].ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.LineItemRepository().Get(ctx, lines[0].ID())
	suite.Require().Error(err, "Lines should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	batch1 := suite.createTestGroup(347, 1)
	batch2 := suite.createTestGroup(348, 1)

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.LineItemRepository().AddBatch(ctx, batch1)
	suite.Require().NoError(err)
	err = uow2.LineItemRepository().AddBatch(ctx, batch2)
	suite.Require().NoError(err)

	_, err = uow1.LineItemRepository().Get(ctx, batch1[0].ID())
	suite.Require().NoError(err, "UOW1 should see its own batch")
	_, err = uow1.LineItemRepository().Get(ctx, batch2[0].ID())
	suite.Require().Error(err, "UOW1 should not see UOW2's uncommitted batch")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.LineItemRepository().Get(ctx, batch1[0].ID())
	suite.Require().NoError(err, "Committed batch should persist")
	_, err = newUow.LineItemRepository().Get(ctx, batch2[0].ID())
	suite.Require().Error(err, "Rolled back batch should not persist")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	lines := suite.createTestGroup(349, 1)

	err := uow.LineItemRepository().AddBatch(ctx, lines)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.LineItemRepository().Get(ctx, lines[0].ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(lines[0].ID()))
}

// The shape of every staff action: lock the group, transition each line,
// write the new statuses, commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GroupApprovalWorkflow() {
	ctx := context.Background()

	lines := suite.createTestGroup(350, 2)
	setup := suite.factory.Create()
	err := setup.LineItemRepository().AddBatch(ctx, lines)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	locked, err := uow.LineItemRepository().GetByGroupForUpdate(ctx, lines[0].GroupID())
	suite.Require().NoError(err)
	suite.Len(locked, 2)

	for _, line := range locked {
		err = line.Approve()
		suite.Require().NoError(err)
		err = uow.LineItemRepository().Update(ctx, line)
		suite.Require().NoError(err)
	}

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	for _, line := range lines {
		retrieved, getErr := newUow.LineItemRepository().Get(ctx, line.ID())
		suite.Require().NoError(getErr)
		suite.Equal(order.Pending, retrieved.Status())
	}
}

// createTestGroup builds n lines sharing one group and token.
func (suite *UnitOfWorkIntegrationTestSuite) createTestGroup(token, n int) []*order.LineItem {
	groupID := kernel.NewUUID()
	groupToken, err := kernel.NewToken(token)
	suite.Require().NoError(err)

	lines := make([]*order.LineItem, 0, n)
	for i := range n {
		line, lineErr := order.NewLineItem(
			kernel.NewUUID(), groupID, groupToken,
			"Latte", i+1, "", "Dana", 80,
			time.Now().UTC().Truncate(time.Microsecond),
		)
		suite.Require().NoError(lineErr)
		lines = append(lines, line)
	}

	return lines
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
