package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTicketsHandler(uow *MockUoW) commands.CreateKitchenTicketsCommandHandler {
	factory := new(MockTicketingUoWFactory)
	factory.On("Create").Return(uow).Once()
	return commands.NewCreateKitchenTicketsCommandHandler(
		factory,
		services.NewTicketFactory(services.NewDefaultDepartmentRouter()),
	)
}

func TestCreateKitchenTicketsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDineIn, order.StatusConfirmed)
	cmd, err := commands.NewCreateKitchenTicketsCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ticketRepo := new(MockKitchenTicketRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("KitchenTicketRepository").Return(ticketRepo).Once()
	orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	ticketRepo.On("GetByOrder", ctx, aggregate.ID()).Return([]*kitchen.Ticket{}, nil).Once()
	ticketRepo.On("Add", ctx, mock.AnythingOfType("[]*kitchen.Ticket")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newTicketsHandler(uow)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	created := ticketRepo.Calls[1].Arguments.Get(1).([]*kitchen.Ticket)
	require.Len(t, created, 1)
	assert.Equal(t, kitchen.DepartmentGrill, created[0].Department())
	assert.Equal(t, kitchen.StatusPending, created[0].Status())
	assert.True(t, created[0].OrderID().IsEqual(aggregate.ID()))
	// Ticket creation never touches the order itself.
	assert.Equal(t, order.StatusConfirmed, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	ticketRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateKitchenTicketsCommandHandler_Handle_ExistingTicketsIsNoOp(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDineIn, order.StatusConfirmed)
	cmd, err := commands.NewCreateKitchenTicketsCommand(aggregate.ID())
	require.NoError(t, err)

	existing := makeTicket(t, aggregate.ID(), kitchen.DepartmentGrill, kitchen.StatusPreparing)

	orderRepo := new(MockOrderRepository)
	ticketRepo := new(MockKitchenTicketRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("KitchenTicketRepository").Return(ticketRepo).Once()
	orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	ticketRepo.On("GetByOrder", ctx, aggregate.ID()).Return([]*kitchen.Ticket{existing}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newTicketsHandler(uow)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	ticketRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateKitchenTicketsCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()

	aggregate := makeOrder(t, order.TypeDineIn, order.StatusCancelled)
	cmd, err := commands.NewCreateKitchenTicketsCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newTicketsHandler(uow)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var stateErr *errs.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
