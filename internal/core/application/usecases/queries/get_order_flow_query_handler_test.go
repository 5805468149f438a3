package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderFlowQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderFlowQueryHandler
}

func (suite *GetOrderFlowQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOrderFlowQueryHandler(db)
}

func (suite *GetOrderFlowQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderFlowQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderFlowQueryHandlerTestSuite) seedOrderInStatus(status order.Status) kernel.UUID {
	total, err := kernel.NewMoney(3000)
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "dry-cleaning", "4 Marina Road",
		[]string{"1x suit"}, total, nil, "")
	suite.Require().NoError(err)
	if status != order.StatusPending {
		suite.Require().NoError(aggregate.ChangeStatus(status))
	}

	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate.ID()
}

func (suite *GetOrderFlowQueryHandlerTestSuite) TestHandle_InProgress_MarksEarlierStepsCompleted() {
	orderID := suite.seedOrderInStatus(order.StatusInProgress)
	query, err := queries.NewGetOrderFlowQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("in-progress", result.Status)
	suite.Require().Len(result.Steps, 4)

	suite.Equal("pending", result.Steps[0].Status)
	suite.True(result.Steps[0].Completed)
	suite.True(result.Steps[1].Completed)
	suite.True(result.Steps[2].Current)
	suite.False(result.Steps[2].Completed)
	suite.False(result.Steps[3].Completed)
	suite.False(result.Steps[3].Current)
	suite.Equal("Cleaning in progress", result.Steps[2].Title)
}

func (suite *GetOrderFlowQueryHandlerTestSuite) TestHandle_Cancelled_RendersSingleStep() {
	orderID := suite.seedOrderInStatus(order.StatusCancelled)
	query, err := queries.NewGetOrderFlowQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("cancelled", result.Status)
	suite.Require().Len(result.Steps, 1)
	suite.Equal("Cancelled", result.Steps[0].Title)
	suite.True(result.Steps[0].Current)
	suite.False(result.Steps[0].Completed)
}

func (suite *GetOrderFlowQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderFlowQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func TestGetOrderFlowQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderFlowQueryHandlerTestSuite))
}
