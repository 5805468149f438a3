package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(userID kernel.UUID) *order.Order {
	total, err := kernel.NewMoney(4500)
	suite.Require().NoError(err)

	pickup := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), userID, "wash-and-fold", "12 Admiralty Way, Lekki",
		[]string{"3x shirts", "2x trousers"}, total, &pickup, "gate code 4411")
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(testOrder.ID()))
	suite.True(restored.UserID().IsEqual(testOrder.UserID()))
	suite.Equal(testOrder.Category(), restored.Category())
	suite.Equal(testOrder.Address(), restored.Address())
	suite.Equal(testOrder.Items(), restored.Items())
	suite.True(restored.Total().IsEqual(testOrder.Total()))
	suite.Equal(order.StatusPending, restored.Status())
	suite.Equal(testOrder.Notes(), restored.Notes())
	suite.Require().NotNil(restored.PickupTime())
	suite.WithinDuration(*testOrder.PickupTime(), *restored.PickupTime(), time.Second)
	suite.WithinDuration(testOrder.CreatedAt(), restored.CreatedAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.StatusConfirmed))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	testOrder := suite.createTestOrder(kernel.NewUUID())

	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByUser_NewestFirst() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.createTestOrder(userID)
	second := suite.createTestOrder(userID)
	other := suite.createTestOrder(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	// Force distinct creation times.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET created_at = created_at - interval '1 hour' WHERE id = ?",
		first.ID().Bytes()).Error)

	orders, err := suite.repository.GetAllByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID().IsEqual(second.ID()))
	suite.True(orders[1].ID().IsEqual(first.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByUser_NoOrders_ReturnsEmptySlice() {
	orders, err := suite.repository.GetAllByUser(context.Background(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_OldestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	waiting := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(waiting.ChangeStatus(order.StatusConfirmed))
	pending := suite.createTestOrder(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, waiting))
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	confirmed, err := suite.repository.GetAllInStatus(ctx, order.StatusConfirmed)
	suite.Require().NoError(err)
	suite.Require().Len(confirmed, 1)
	suite.True(confirmed[0].ID().IsEqual(waiting.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
