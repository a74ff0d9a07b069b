package queries_test

import (
	"context"
	"time"

	"canteen/internal/adapters/out/postgres/lineitemrepo"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding through the repository.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// querySuite is the shared base for query handler suites: one PostgreSQL
// container per suite, a truncated table per test, and seeding helpers.
type querySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *lineitemrepo.GormLineItemRepository
}

func (suite *querySuite) SetupSuite() {
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

	suite.repo = lineitemrepo.NewGormLineItemRepository(db, mockAggregateTracker{})
}

func (suite *querySuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE line_items").Error
	suite.Require().NoError(err)
}

func (suite *querySuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *querySuite) token(value int) kernel.Token {
	token, err := kernel.NewToken(value)
	suite.Require().NoError(err)
	return token
}

// seededLine describes one line to store: item name, price and status.
type seededLine struct {
	item   string
	price  int
	status order.Status
}

// seedGroup stores one group of lines under the given token, oldest first in
// the order given.
func (suite *querySuite) seedGroup(token int, createdAt time.Time, seeds ...seededLine) []*order.LineItem {
	groupID := kernel.NewUUID()
	groupToken := suite.token(token)

	lines := make([]*order.LineItem, 0, len(seeds))
	for i, s := range seeds {
		line, err := order.RestoreLineItem(
			kernel.NewUUID(), groupID, groupToken,
			s.item, 1, "", "Dana", s.price,
			createdAt.Add(time.Duration(i)*time.Second).UTC().Truncate(time.Microsecond),
			s.status,
		)
		suite.Require().NoError(err)
		lines = append(lines, line)
	}

	err := suite.repo.AddBatch(context.Background(), lines)
	suite.Require().NoError(err)

	return lines
}
