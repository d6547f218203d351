package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/ticketrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker implements the repositories' aggregateTracker for
// test purposes. It's a no-op since query tests don't track aggregates.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

type GetKitchenQueueQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetKitchenQueueQueryHandler
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&ticketrepo.TicketDTO{},
		&ticketrepo.TicketItemDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetKitchenQueueQueryHandler(db, services.NewQueuePlanner(15*time.Minute))
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE kitchen_ticket_items, kitchen_tickets, order_items, orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetKitchenQueueQuery(nil, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_UrgentOrderSortsFirst() {
	ctx := context.Background()
	now := time.Now().UTC()

	// An older normal order and a younger urgent one: urgency wins over age.
	normalOrder := suite.addOrder(ctx, "ORD-1001", order.PriorityNormal, now.Add(-time.Hour))
	urgentOrder := suite.addOrder(ctx, "ORD-1002", order.PriorityUrgent, now)
	suite.addTicket(ctx, normalOrder.ID(), kitchen.DepartmentGrill, "Classic Burger")
	suite.addTicket(ctx, urgentOrder.ID(), kitchen.DepartmentGrill, "Rib Eye Steak")

	query, err := queries.NewGetKitchenQueueQuery(nil, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("ORD-1002", result[0].OrderNumber)
	suite.Equal("ORD-1001", result[1].OrderNumber)
	suite.Equal(order.PriorityUrgent, result[0].Priority)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_DepartmentFilter() {
	ctx := context.Background()
	now := time.Now().UTC()

	testOrder := suite.addOrder(ctx, "ORD-1001", order.PriorityNormal, now)
	suite.addTicket(ctx, testOrder.ID(), kitchen.DepartmentGrill, "Classic Burger")
	suite.addTicket(ctx, testOrder.ID(), kitchen.DepartmentCold, "Caesar Salad")

	grill := kitchen.DepartmentGrill
	query, err := queries.NewGetKitchenQueueQuery(&grill, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(kitchen.DepartmentGrill, result[0].Department)
	suite.Equal("Classic Burger", result[0].ItemName)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_LimitTruncatesQueue() {
	ctx := context.Background()
	now := time.Now().UTC()

	first := suite.addOrder(ctx, "ORD-1001", order.PriorityNormal, now.Add(-2*time.Hour))
	second := suite.addOrder(ctx, "ORD-1002", order.PriorityNormal, now.Add(-time.Hour))
	suite.addTicket(ctx, first.ID(), kitchen.DepartmentGrill, "Classic Burger")
	suite.addTicket(ctx, second.ID(), kitchen.DepartmentGrill, "Cheeseburger")

	query, err := queries.NewGetKitchenQueueQuery(nil, 1)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ORD-1001", result[0].OrderNumber)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_SkipsCancelledOrders() {
	ctx := context.Background()
	now := time.Now().UTC()

	cancelledOrder := suite.addOrderWithStatus(ctx, "ORD-1001", order.StatusCancelled, order.PriorityNormal, now)
	suite.addTicket(ctx, cancelledOrder.ID(), kitchen.DepartmentGrill, "Classic Burger")

	query, err := queries.NewGetKitchenQueueQuery(nil, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_StampsEstimatedWindow() {
	ctx := context.Background()
	createdAt := time.Now().UTC().Truncate(time.Second)

	testOrder := suite.addOrder(ctx, "ORD-1001", order.PriorityNormal, createdAt)
	suite.addTicket(ctx, testOrder.ID(), kitchen.DepartmentGrill, "Classic Burger")

	query, err := queries.NewGetKitchenQueueQuery(nil, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	wantStart := createdAt.Add(15 * time.Minute)
	suite.WithinDuration(wantStart, result[0].EstimatedStart, time.Second)
	suite.WithinDuration(wantStart.Add(12*time.Minute), result[0].EstimatedEnd, time.Second)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetKitchenQueueQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetKitchenQueueQuery constructor")
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) addOrder(
	ctx context.Context, number string, priority order.Priority, createdAt time.Time,
) *order.Order {
	return suite.addOrderWithStatus(ctx, number, order.StatusConfirmed, priority, createdAt)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) addOrderWithStatus(
	ctx context.Context, number string, status order.Status, priority order.Priority, createdAt time.Time,
) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "Classic Burger", "Burgers", 1, 1250, 12, "")
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		number,
		order.TypeDineIn,
		status,
		priority,
		order.Customer{Name: "Dana", Phone: "+15550100"},
		4,
		[]order.Item{item},
		1250,
		createdAt,
		createdAt,
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(ctx, testOrder))

	return testOrder
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) addTicket(
	ctx context.Context, orderID kernel.UUID, department kitchen.Department, itemName string,
) *kitchen.Ticket {
	item, err := kitchen.NewTicketItem(kernel.NewUUID(), kernel.NewUUID(), itemName, 1, 12, "")
	suite.Require().NoError(err)

	ticket, err := kitchen.NewTicket(kernel.NewUUID(), orderID, department, []*kitchen.TicketItem{item}, time.Now().UTC())
	suite.Require().NoError(err)

	repo := ticketrepo.NewGormTicketRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(ctx, []*kitchen.Ticket{ticket}))

	return ticket
}

func TestGetKitchenQueueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetKitchenQueueQueryHandlerTestSuite))
}
