package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type advanceDeliveryFixture struct {
	handler      commands.AdvanceDeliveryCommandHandler
	orderRepo    *MockOrderRepository
	deliveryRepo *MockDeliveryRepository
	courierRepo  *MockCourierRepository
	ticketRepo   *MockKitchenTicketRepository
	uow          *MockUoW
	notifier     *MockOrderNotifier
}

func newAdvanceDeliveryFixture() *advanceDeliveryFixture {
	f := &advanceDeliveryFixture{
		orderRepo:    new(MockOrderRepository),
		deliveryRepo: new(MockDeliveryRepository),
		courierRepo:  new(MockCourierRepository),
		ticketRepo:   new(MockKitchenTicketRepository),
		uow:          new(MockUoW),
		notifier:     new(MockOrderNotifier),
	}

	f.uow.On("OrderRepository").Return(f.orderRepo).Maybe()
	f.uow.On("DeliveryRepository").Return(f.deliveryRepo).Maybe()
	f.uow.On("CourierRepository").Return(f.courierRepo).Maybe()
	f.uow.On("KitchenTicketRepository").Return(f.ticketRepo).Maybe()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewAdvanceDeliveryCommandHandler(factory, f.notifier)
	return f
}

func TestAdvanceDeliveryCommandHandler_Handle_DeliveredClosesOrder(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDelivery, order.StatusReady)
	courierID := kernel.NewUUID()
	shipment := makeDelivery(t, aggregate.ID(), &courierID, delivery.StatusInTransit)

	cmd, err := commands.NewAdvanceDeliveryCommand(aggregate.ID(), delivery.StatusDelivered)
	require.NoError(t, err)

	f := newAdvanceDeliveryFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	f.deliveryRepo.On("GetByOrder", ctx, aggregate.ID()).Return(shipment, nil).Once()
	f.deliveryRepo.On("Update", ctx, shipment).Return(nil).Once()
	f.courierRepo.On("Release", ctx, courierID).Return(nil).Once()
	f.orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.notifier.On("OrderCompleted", ctx, aggregate).Once()

	err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusDelivered, shipment.Status())
	assert.NotNil(t, shipment.DeliveredAt())
	assert.Equal(t, order.StatusDelivered, aggregate.Status())

	f.deliveryRepo.AssertExpectations(t)
	f.courierRepo.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_FailedCancelsOrder(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDelivery, order.StatusReady)
	courierID := kernel.NewUUID()
	shipment := makeDelivery(t, aggregate.ID(), &courierID, delivery.StatusInTransit)
	cookingTicket := makeTicket(t, aggregate.ID(), kitchen.DepartmentGrill, kitchen.StatusPreparing)
	servedTicket := makeTicket(t, aggregate.ID(), kitchen.DepartmentCold, kitchen.StatusServed)

	cmd, err := commands.NewAdvanceDeliveryCommand(aggregate.ID(), delivery.StatusFailed)
	require.NoError(t, err)

	f := newAdvanceDeliveryFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	f.deliveryRepo.On("GetByOrder", ctx, aggregate.ID()).Return(shipment, nil).Once()
	f.deliveryRepo.On("Update", ctx, shipment).Return(nil).Once()
	f.courierRepo.On("Release", ctx, courierID).Return(nil).Once()
	f.orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	f.ticketRepo.On("GetByOrder", ctx, aggregate.ID()).
		Return([]*kitchen.Ticket{cookingTicket, servedTicket}, nil).Once()
	f.ticketRepo.On("Update", ctx, cookingTicket).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.notifier.On("OrderCancelled", ctx, aggregate).Once()

	err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusFailed, shipment.Status())
	assert.Equal(t, order.StatusCancelled, aggregate.Status())
	assert.Equal(t, kitchen.StatusCancelled, cookingTicket.Status())
	assert.Equal(t, kitchen.StatusServed, servedTicket.Status())

	f.ticketRepo.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_NonTerminalJustCommits(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDelivery, order.StatusReady)
	courierID := kernel.NewUUID()
	shipment := makeDelivery(t, aggregate.ID(), &courierID, delivery.StatusAssigned)

	cmd, err := commands.NewAdvanceDeliveryCommand(aggregate.ID(), delivery.StatusPickedUp)
	require.NoError(t, err)

	f := newAdvanceDeliveryFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	f.deliveryRepo.On("GetByOrder", ctx, aggregate.ID()).Return(shipment, nil).Once()
	f.deliveryRepo.On("Update", ctx, shipment).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusPickedUp, shipment.Status())
	assert.Equal(t, order.StatusReady, aggregate.Status())

	f.courierRepo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "OrderCompleted", mock.Anything, mock.Anything)
	f.uow.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDelivery, order.StatusCancelled)

	cmd, err := commands.NewAdvanceDeliveryCommand(aggregate.ID(), delivery.StatusPickedUp)
	require.NoError(t, err)

	f := newAdvanceDeliveryFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.Error(t, err)
	var stateErr *errs.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	f.deliveryRepo.AssertNotCalled(t, "GetByOrder", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAdvanceDeliveryCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDelivery, order.StatusConfirmed)
	shipment := makeDelivery(t, aggregate.ID(), nil, delivery.StatusPending)

	cmd, err := commands.NewAdvanceDeliveryCommand(aggregate.ID(), delivery.StatusPickedUp)
	require.NoError(t, err)

	f := newAdvanceDeliveryFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	f.deliveryRepo.On("GetByOrder", ctx, aggregate.ID()).Return(shipment, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.Error(t, err)
	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, delivery.StatusPending, shipment.Status())
	f.deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAdvanceDeliveryCommandHandler_Handle_ReappliedTerminalIsNoOp(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDelivery, order.StatusDelivered)
	courierID := kernel.NewUUID()
	shipment := makeDelivery(t, aggregate.ID(), &courierID, delivery.StatusDelivered)

	cmd, err := commands.NewAdvanceDeliveryCommand(aggregate.ID(), delivery.StatusDelivered)
	require.NoError(t, err)

	f := newAdvanceDeliveryFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	f.deliveryRepo.On("GetByOrder", ctx, aggregate.ID()).Return(shipment, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// The courier may already be carrying another delivery.
	f.courierRepo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	f.deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "OrderCompleted", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_TerminalDeliveryRejectsOtherTerminal(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDelivery, order.StatusDelivered)
	shipment := makeDelivery(t, aggregate.ID(), nil, delivery.StatusDelivered)

	cmd, err := commands.NewAdvanceDeliveryCommand(aggregate.ID(), delivery.StatusFailed)
	require.NoError(t, err)

	f := newAdvanceDeliveryFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	f.deliveryRepo.On("GetByOrder", ctx, aggregate.ID()).Return(shipment, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.Error(t, err)
	var stateErr *errs.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, delivery.StatusDelivered, shipment.Status())
	f.deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}
