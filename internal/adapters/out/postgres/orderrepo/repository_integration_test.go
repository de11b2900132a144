package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_line_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(storeID kernel.UUID) *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), 2, decimal.NewFromFloat(9.99), "size-L")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), storeID, kernel.NewUUID(),
		[]order.LineItem{item}, decimal.NewFromFloat(19.98),
		order.Metadata{PaymentMethod: "card", ShippingAddress: "1 Main St"},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.Require().NoError(suite.db.Model(&orderrepo.LineItemDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NilOrder_ReturnsError() {
	var missing *order.Order

	err := suite.repository.Add(context.Background(), missing)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())

	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(loaded.ID()))
	suite.True(testOrder.StoreID().IsEqual(loaded.StoreID()))
	suite.True(testOrder.CustomerID().IsEqual(loaded.CustomerID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.True(testOrder.Total().Equal(loaded.Total()))
	suite.Equal("card", loaded.Metadata().PaymentMethod)
	suite.Require().Len(loaded.LineItems(), 1)
	suite.Equal(2, loaded.LineItems()[0].Quantity())
	suite.Equal("size-L", loaded.LineItems()[0].Variant())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MatchingPriorStatus_Succeeds() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Confirmed, time.Now().UTC()))

	err := suite.repository.Update(ctx, testOrder, order.Pending)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StalePriorStatus_ReturnsConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First writer moves the order to Confirmed.
	firstWriter, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(firstWriter.ChangeStatus(order.Confirmed, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, firstWriter, order.Pending))

	// Second writer still believes the order is Pending.
	suite.Require().NoError(testOrder.ChangeStatus(order.Cancelled, time.Now().UTC()))
	err = suite.repository.Update(ctx, testOrder, order.Pending)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTrackingCode() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	now := time.Now().UTC()
	suite.Require().NoError(testOrder.ChangeStatus(order.Confirmed, now))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder, order.Pending))
	suite.Require().NoError(testOrder.ChangeStatus(order.Processing, now))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder, order.Confirmed))

	suite.Require().NoError(testOrder.ChangeStatus(order.Shipped, now))
	testOrder.SetTrackingCode("TRK-99")
	suite.Require().NoError(suite.repository.Update(ctx, testOrder, order.Processing))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, loaded.Status())
	suite.Equal("TRK-99", loaded.Metadata().TrackingCode)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByStore_FiltersAndSorts() {
	ctx := context.Background()
	storeID := kernel.NewUUID()

	first := suite.createTestOrder(storeID)
	second := suite.createTestOrder(storeID)
	other := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetAllByStore(ctx, storeID)

	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, o := range orders {
		suite.True(storeID.IsEqual(o.StoreID()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingBefore_ReturnsOnlyStaleOrders() {
	ctx := context.Background()
	storeID := kernel.NewUUID()

	stale := suite.createTestOrder(storeID)
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	confirmed := suite.createTestOrder(storeID)
	suite.Require().NoError(suite.repository.Add(ctx, confirmed))
	suite.Require().NoError(confirmed.ChangeStatus(order.Confirmed, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, confirmed, order.Pending))

	cutoff := time.Now().UTC().Add(time.Hour)
	staleOrders, err := suite.repository.GetAllPendingBefore(ctx, cutoff)

	suite.Require().NoError(err)
	suite.Require().Len(staleOrders, 1)
	suite.True(stale.ID().IsEqual(staleOrders[0].ID()))

	// Nothing is stale for a cutoff in the past.
	staleOrders, err = suite.repository.GetAllPendingBefore(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Empty(staleOrders)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
