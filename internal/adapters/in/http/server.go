// Package http exposes the engine over a REST surface built on echo.
// Handlers translate wire shapes to commands and queries and map domain
// errors onto HTTP statuses; they contain no business rules of their own.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	transitionOrderHandler   commands.TransitionOrderCommandHandler
	createTicketsHandler     commands.CreateKitchenTicketsCommandHandler
	advanceTicketItemHandler commands.AdvanceTicketItemCommandHandler
	assignChefHandler        commands.AssignChefCommandHandler
	reprioritizeHandler      commands.ReprioritizeOrderCommandHandler
	ensureDeliveryHandler    commands.EnsureDeliveryCommandHandler
	assignCourierHandler     commands.AssignCourierCommandHandler
	advanceDeliveryHandler   commands.AdvanceDeliveryCommandHandler
	createCourierHandler     commands.CreateCourierCommandHandler

	getOrdersHandler     queries.GetUncompletedOrdersQueryHandler
	getQueueHandler      queries.GetKitchenQueueQueryHandler
	getQueueStatsHandler queries.GetKitchenQueueStatsQueryHandler
	getCouriersHandler   queries.GetCouriersQueryHandler
	getDeliveryHandler   queries.GetDeliveryByOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	createTicketsHandler commands.CreateKitchenTicketsCommandHandler,
	advanceTicketItemHandler commands.AdvanceTicketItemCommandHandler,
	assignChefHandler commands.AssignChefCommandHandler,
	reprioritizeHandler commands.ReprioritizeOrderCommandHandler,
	ensureDeliveryHandler commands.EnsureDeliveryCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	getOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getQueueHandler queries.GetKitchenQueueQueryHandler,
	getQueueStatsHandler queries.GetKitchenQueueStatsQueryHandler,
	getCouriersHandler queries.GetCouriersQueryHandler,
	getDeliveryHandler queries.GetDeliveryByOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		transitionOrderHandler:   transitionOrderHandler,
		createTicketsHandler:     createTicketsHandler,
		advanceTicketItemHandler: advanceTicketItemHandler,
		assignChefHandler:        assignChefHandler,
		reprioritizeHandler:      reprioritizeHandler,
		ensureDeliveryHandler:    ensureDeliveryHandler,
		assignCourierHandler:     assignCourierHandler,
		advanceDeliveryHandler:   advanceDeliveryHandler,
		createCourierHandler:     createCourierHandler,
		getOrdersHandler:         getOrdersHandler,
		getQueueHandler:          getQueueHandler,
		getQueueStatsHandler:     getQueueStatsHandler,
		getCouriersHandler:       getCouriersHandler,
		getDeliveryHandler:       getDeliveryHandler,
	}
}

// RegisterRoutes attaches every route of the engine to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PATCH("/orders/:id/status", s.TransitionOrder)

	api.POST("/kitchen/tickets", s.CreateTickets)
	api.PATCH("/kitchen/tickets/:ticketId/items/:itemId/status", s.AdvanceTicketItem)
	api.PATCH("/kitchen/tickets/:ticketId/chef", s.AssignChef)
	api.GET("/kitchen/queue", s.GetQueue)
	api.POST("/kitchen/queue", s.ReprioritizeQueue)
	api.GET("/kitchen/stats", s.GetQueueStats)

	api.POST("/delivery/:orderId", s.EnsureDelivery)
	api.PUT("/delivery/:orderId/assign", s.AssignCourier)
	api.PUT("/delivery/:orderId/status", s.AdvanceDelivery)
	api.GET("/delivery/:orderId", s.GetDelivery)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.GetCouriers)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType, err := order.TypeFromString(req.Type)
	if err != nil {
		return badRequest(ctx, "Invalid order type: "+req.Type)
	}

	priority := order.PriorityNormal
	if req.Priority != "" {
		if priority, err = order.PriorityFromString(req.Priority); err != nil {
			return badRequest(ctx, "Invalid priority: "+req.Priority)
		}
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "Invalid menu item id: "+item.MenuItemID)
		}
		lines = append(lines, commands.OrderLine{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		orderType,
		priority,
		req.Customer.Name,
		req.Customer.Phone,
		req.Customer.Address,
		req.TableNumber,
		lines,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/orders - retrieves all in-flight orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles PATCH /api/orders/:id/status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid order status: "+req.Status)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTickets handles POST /api/kitchen/tickets - fans an order out to
// the kitchen.
func (s *Server) CreateTickets(ctx echo.Context) error {
	var req CreateTicketsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+req.OrderID)
	}

	cmd, err := commands.NewCreateKitchenTicketsCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createTicketsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AdvanceTicketItem handles PATCH /api/kitchen/tickets/:ticketId/items/:itemId/status.
func (s *Server) AdvanceTicketItem(ctx echo.Context) error {
	ticketID, err := kernel.UUIDFromString(ctx.Param("ticketId"))
	if err != nil {
		return badRequest(ctx, "Invalid ticket id")
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := kitchen.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid ticket item status: "+req.Status)
	}

	cmd, err := commands.NewAdvanceTicketItemCommand(ticketID, itemID, target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.advanceTicketItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignChef handles PATCH /api/kitchen/tickets/:ticketId/chef.
func (s *Server) AssignChef(ctx echo.Context) error {
	ticketID, err := kernel.UUIDFromString(ctx.Param("ticketId"))
	if err != nil {
		return badRequest(ctx, "Invalid ticket id")
	}

	var req AssignChefRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignChefCommand(ticketID, req.Chef)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignChefHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetQueue handles GET /api/kitchen/queue?station=&limit=.
func (s *Server) GetQueue(ctx echo.Context) error {
	department, limit, err := queueParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetKitchenQueueQuery(department, limit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.getQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]QueueEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toQueueEntryResponse(entry))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReprioritizeQueue handles POST /api/kitchen/queue - bump or defer an
// order from the queue.
func (s *Server) ReprioritizeQueue(ctx echo.Context) error {
	var req QueueActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ticketID, err := kernel.UUIDFromString(req.TicketID)
	if err != nil {
		return badRequest(ctx, "Invalid ticket id: "+req.TicketID)
	}

	var action commands.PriorityAction
	switch req.Action {
	case "priority", string(commands.ActionBump):
		action = commands.ActionBump
	case "skip", string(commands.ActionDefer):
		action = commands.ActionDefer
	default:
		return badRequest(ctx, "Invalid queue action: "+req.Action)
	}

	cmd, err := commands.NewReprioritizeOrderCommand(ticketID, action)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.reprioritizeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetQueueStats handles GET /api/kitchen/stats?station=.
func (s *Server) GetQueueStats(ctx echo.Context) error {
	department, _, err := queueParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetKitchenQueueStatsQuery(department)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.getQueueStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQueueStatsResponse(stats))
}

// EnsureDelivery handles POST /api/delivery/:orderId.
func (s *Server) EnsureDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req EnsureDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEnsureDeliveryCommand(orderID, req.Fee)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.ensureDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AssignCourier handles PUT /api/delivery/:orderId/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+req.CourierID)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceDelivery handles PUT /api/delivery/:orderId/status.
func (s *Server) AdvanceDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid delivery status: "+req.Status)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.advanceDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDelivery handles GET /api/delivery/:orderId.
func (s *Server) GetDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetDeliveryByOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(resp))
}

// CreateCourier handles POST /api/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(
		courierID,
		req.Name,
		req.Phone,
		req.VehicleType,
		req.VehiclePlate,
	)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: courierID.String()})
}

// GetCouriers handles GET /api/couriers?available=true.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetCouriersQuery(ctx.QueryParam("available") == "true")

	couriers, err := s.getCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CourierResponse, 0, len(couriers))
	for _, c := range couriers {
		response = append(response, CourierResponse{
			ID:           c.ID.String(),
			Name:         c.Name,
			Phone:        c.Phone,
			VehicleType:  c.VehicleType,
			VehiclePlate: c.VehiclePlate,
			Status:       c.Status,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func queueParams(ctx echo.Context) (*kitchen.Department, int, error) {
	var department *kitchen.Department
	if station := ctx.QueryParam("station"); station != "" {
		d, err := kitchen.DepartmentFromString(station)
		if err != nil {
			return nil, 0, err
		}
		department = &d
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		if err := echo.QueryParamsBinder(ctx).Int("limit", &limit).BindError(); err != nil {
			return nil, 0, err
		}
	}

	return department, limit, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP statuses: missing objects are
// 404, state and transition conflicts are 409, validation failures are
// 400, everything else is a 500.
func writeError(ctx echo.Context, err error) error {
	var status int

	var notFoundErr *errs.ObjectNotFoundError
	var transitionErr *errs.InvalidTransitionError
	var stateErr *errs.InvalidStateError
	var unavailableErr *errs.CourierUnavailableError
	var notDeliverableErr *errs.OrderNotDeliverableError

	switch {
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &transitionErr),
		errors.As(err, &stateErr),
		errors.As(err, &unavailableErr):
		status = http.StatusConflict
	case errors.As(err, &notDeliverableErr),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
