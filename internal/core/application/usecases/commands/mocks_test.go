package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockKitchenTicketRepository struct{ mock.Mock }

func (m *MockKitchenTicketRepository) Add(ctx context.Context, tickets []*kitchen.Ticket) error {
	args := m.Called(ctx, tickets)
	return args.Error(0)
}

func (m *MockKitchenTicketRepository) Update(ctx context.Context, ticket *kitchen.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockKitchenTicketRepository) Get(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kitchen.Ticket), args.Error(1)
}

func (m *MockKitchenTicketRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*kitchen.Ticket, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kitchen.Ticket), args.Error(1)
}

func (m *MockKitchenTicketRepository) GetAllActive(ctx context.Context) ([]*kitchen.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kitchen.Ticket), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetFirstPending(ctx context.Context) (*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) Reserve(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourierRepository) Release(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package,
// so one mock type serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) KitchenTicketRepository() ports.KitchenTicketRepository {
	args := m.Called()
	return args.Get(0).(ports.KitchenTicketRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockTicketingUoWFactory struct{ mock.Mock }

func (m *MockTicketingUoWFactory) Create() commands.TicketingUoW {
	args := m.Called()
	return args.Get(0).(commands.TicketingUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) Lookup(ctx context.Context, menuItemID kernel.UUID) (ports.MenuItemInfo, error) {
	args := m.Called(ctx, menuItemID)
	return args.Get(0).(ports.MenuItemInfo), args.Error(1)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) OrderCompleted(ctx context.Context, aggregate *order.Order) {
	m.Called(ctx, aggregate)
}

func (m *MockOrderNotifier) OrderCancelled(ctx context.Context, aggregate *order.Order) {
	m.Called(ctx, aggregate)
}

// Shared aggregate builders for handler tests.

func makeOrderItem(t *testing.T, name, category string, quantity, prepMinutes int) order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), name, category, quantity, 1000, prepMinutes, "")
	require.NoError(t, err)
	return item
}

func makeOrder(t *testing.T, orderType order.Type, status order.Status) *order.Order {
	t.Helper()

	now := time.Now().UTC()
	items := []order.Item{makeOrderItem(t, "Classic Burger", "Burgers", 1, 12)}

	o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1001", orderType, status, order.PriorityNormal,
		order.Customer{Name: "Dana", Phone: "+15550100", Address: "12 Main St"}, 0, items, 1000, now, now)
	require.NoError(t, err)
	return o
}

func makeTicket(t *testing.T, orderID kernel.UUID, department kitchen.Department, status kitchen.Status) *kitchen.Ticket {
	t.Helper()

	now := time.Now().UTC()
	item, err := kitchen.RestoreTicketItem(kernel.NewUUID(), kernel.NewUUID(), "Classic Burger", 1, 12, "", status)
	require.NoError(t, err)

	ticket, err := kitchen.RestoreTicket(kernel.NewUUID(), orderID, department, status, "", 12,
		[]*kitchen.TicketItem{item}, now, now)
	require.NoError(t, err)
	return ticket
}

func makeDelivery(t *testing.T, orderID kernel.UUID, courierID *kernel.UUID, status delivery.Status) *delivery.Delivery {
	t.Helper()

	now := time.Now().UTC()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), orderID, courierID, status, "12 Main St", 500,
		nil, nil, nil, nil, now, now)
	require.NoError(t, err)
	return d
}

func makeCourier(t *testing.T, name string) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), name, "+15550101", "bicycle", "AB-123")
	require.NoError(t, err)
	return c
}
