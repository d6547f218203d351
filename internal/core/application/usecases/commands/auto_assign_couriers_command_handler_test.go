package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAutoAssignHandler(uow *MockUoW) commands.AutoAssignCouriersCommandHandler {
	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()
	return commands.NewAutoAssignCouriersCommandHandler(factory, services.NewCourierDispatcher())
}

func TestAutoAssignCouriersCommandHandler_Handle_AssignsFirstAvailable(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	shipment := makeDelivery(t, orderID, nil, delivery.StatusPending)
	first := makeCourier(t, "Alex")
	second := makeCourier(t, "Robin")

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("CourierRepository").Return(courierRepo)
	deliveryRepo.On("GetFirstPending", ctx).Return(shipment, nil).Once()
	courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{first, second}, nil).Once()
	courierRepo.On("Reserve", ctx, first.ID()).Return(nil).Once()
	deliveryRepo.On("Update", ctx, shipment).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newAutoAssignHandler(uow)
	err := handler.Handle(ctx, commands.NewAutoAssignCouriersCommand())

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusAssigned, shipment.Status())
	require.NotNil(t, shipment.Courier())
	assert.True(t, shipment.Courier().IsEqual(first.ID()))

	deliveryRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAutoAssignCouriersCommandHandler_Handle_NoPendingDeliveries(t *testing.T) {
	ctx := t.Context()

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("GetFirstPending", ctx).
		Return(nil, errs.NewObjectNotFoundError("delivery", "pending")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newAutoAssignHandler(uow)
	err := handler.Handle(ctx, commands.NewAutoAssignCouriersCommand())

	require.ErrorIs(t, err, commands.ErrNoPendingDeliveries)
	courierRepo.AssertNotCalled(t, "GetAllAvailable", mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAutoAssignCouriersCommandHandler_Handle_NoFreeCouriers(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	shipment := makeDelivery(t, orderID, nil, delivery.StatusPending)

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("CourierRepository").Return(courierRepo)
	deliveryRepo.On("GetFirstPending", ctx).Return(shipment, nil).Once()
	courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newAutoAssignHandler(uow)
	err := handler.Handle(ctx, commands.NewAutoAssignCouriersCommand())

	require.ErrorIs(t, err, commands.ErrNoFreeCouriersFound)
	assert.Equal(t, delivery.StatusPending, shipment.Status())
	courierRepo.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAutoAssignCouriersCommandHandler_Handle_ReservationLost(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	shipment := makeDelivery(t, orderID, nil, delivery.StatusPending)
	candidate := makeCourier(t, "Alex")

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("CourierRepository").Return(courierRepo)
	deliveryRepo.On("GetFirstPending", ctx).Return(shipment, nil).Once()
	courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{candidate}, nil).Once()
	courierRepo.On("Reserve", ctx, candidate.ID()).
		Return(errs.NewCourierUnavailableError(candidate.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newAutoAssignHandler(uow)
	err := handler.Handle(ctx, commands.NewAutoAssignCouriersCommand())

	require.Error(t, err)
	var unavailableErr *errs.CourierUnavailableError
	require.ErrorAs(t, err, &unavailableErr)
	assert.Equal(t, delivery.StatusPending, shipment.Status())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAutoAssignCouriersCommand_Validate(t *testing.T) {
	t.Run("should fail for zero value command", func(t *testing.T) {
		var cmd commands.AutoAssignCouriersCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAutoAssignCouriersCommandIsNotConstructed)
	})

	t.Run("should pass for constructed command", func(t *testing.T) {
		cmd := commands.NewAutoAssignCouriersCommand()
		assert.NoError(t, cmd.Validate())
	})
}
