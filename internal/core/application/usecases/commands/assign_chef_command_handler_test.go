package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignChefCommand(t *testing.T) {
	t.Run("should fail for empty chef name", func(t *testing.T) {
		_, err := commands.NewAssignChefCommand(kernel.NewUUID(), "")

		var requiredErr *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &requiredErr)
	})

	t.Run("should fail for invalid ticket id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := commands.NewAssignChefCommand(zeroID, "Marco")

		require.Error(t, err)
	})

	t.Run("should fail for zero value command", func(t *testing.T) {
		var cmd commands.AssignChefCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAssignChefCommandIsNotConstructed)
	})
}

func newAssignChefHandler(uow *MockUoW) commands.AssignChefCommandHandler {
	factory := new(MockTicketingUoWFactory)
	factory.On("Create").Return(uow).Once()
	return commands.NewAssignChefCommandHandler(factory)
}

func TestAssignChefCommandHandler_Handle_RecordsChef(t *testing.T) {
	ctx := t.Context()

	ticket := makeTicket(t, kernel.NewUUID(), kitchen.DepartmentGrill, kitchen.StatusPreparing)
	cmd, err := commands.NewAssignChefCommand(ticket.ID(), "Marco")
	require.NoError(t, err)

	ticketRepo := new(MockKitchenTicketRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("KitchenTicketRepository").Return(ticketRepo).Once()
	ticketRepo.On("Get", ctx, ticket.ID()).Return(ticket, nil).Once()
	ticketRepo.On("Update", ctx, ticket).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newAssignChefHandler(uow)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Marco", ticket.Chef())
	ticketRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignChefCommandHandler_Handle_TerminalTicket(t *testing.T) {
	ctx := t.Context()

	ticket := makeTicket(t, kernel.NewUUID(), kitchen.DepartmentGrill, kitchen.StatusCancelled)
	cmd, err := commands.NewAssignChefCommand(ticket.ID(), "Marco")
	require.NoError(t, err)

	ticketRepo := new(MockKitchenTicketRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("KitchenTicketRepository").Return(ticketRepo).Once()
	ticketRepo.On("Get", ctx, ticket.ID()).Return(ticket, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newAssignChefHandler(uow)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var stateErr *errs.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Empty(t, ticket.Chef())
	ticketRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
