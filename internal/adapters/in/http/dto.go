package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
)

// ErrorResponse is the uniform error body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the request body for POST /api/orders.
type CreateOrderRequest struct {
	Type        string             `json:"type"`
	Priority    string             `json:"priority,omitempty"`
	Customer    CustomerRequest    `json:"customer"`
	TableNumber int                `json:"tableNumber,omitempty"`
	Items       []OrderLineRequest `json:"items"`
}

// CustomerRequest is the customer snapshot inside CreateOrderRequest.
type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderLineRequest is one requested line inside CreateOrderRequest.
type OrderLineRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// UpdateStatusRequest is the request body of every status PATCH/PUT.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignChefRequest is the request body for PATCH /api/kitchen/tickets/:ticketId/chef.
type AssignChefRequest struct {
	Chef string `json:"chef"`
}

// CreateTicketsRequest is the request body for POST /api/kitchen/tickets.
type CreateTicketsRequest struct {
	OrderID string `json:"orderId"`
}

// QueueActionRequest is the request body for POST /api/kitchen/queue.
// Action "priority" bumps the ticket's order to URGENT, "skip" defers it
// to LOW.
type QueueActionRequest struct {
	TicketID string `json:"ticketId"`
	Action   string `json:"action"`
}

// CreateCourierRequest is the request body for POST /api/couriers.
type CreateCourierRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	VehicleType  string `json:"vehicleType,omitempty"`
	VehiclePlate string `json:"vehiclePlate,omitempty"`
}

// AssignCourierRequest is the request body for PUT /api/delivery/:orderId/assign.
type AssignCourierRequest struct {
	CourierID string `json:"courierId"`
}

// EnsureDeliveryRequest is the request body for POST /api/delivery/:orderId.
type EnsureDeliveryRequest struct {
	Fee int64 `json:"fee,omitempty"`
}

// OrderResponse is one in-flight order in GET /api/orders.
type OrderResponse struct {
	ID           string              `json:"id"`
	Number       string              `json:"number"`
	Type         string              `json:"type"`
	Status       string              `json:"status"`
	Priority     string              `json:"priority"`
	CustomerName string              `json:"customerName"`
	TableNumber  int                 `json:"tableNumber,omitempty"`
	Total        int64               `json:"total"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one line of an order in GET /api/orders.
type OrderItemResponse struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
	Notes      string `json:"notes,omitempty"`
}

// QueueEntryResponse is one queue row in GET /api/kitchen/queue.
type QueueEntryResponse struct {
	TicketItemID       string    `json:"ticketItemId"`
	TicketID           string    `json:"ticketId"`
	OrderID            string    `json:"orderId"`
	OrderNumber        string    `json:"orderNumber"`
	TableNumber        int       `json:"tableNumber,omitempty"`
	ItemName           string    `json:"itemName"`
	Quantity           int       `json:"quantity"`
	Notes              string    `json:"notes,omitempty"`
	Station            string    `json:"station"`
	Priority           string    `json:"priority"`
	Status             string    `json:"status"`
	PreparationMinutes int       `json:"preparationMinutes"`
	EstimatedStart     time.Time `json:"estimatedStart"`
	EstimatedEnd       time.Time `json:"estimatedEnd"`
}

// QueueStatsResponse is the body of GET /api/kitchen/stats.
type QueueStatsResponse struct {
	TotalItems      int            `json:"totalItems"`
	UrgentItems     int            `json:"urgentItems"`
	AvgWaitMinutes  int            `json:"avgWaitMinutes"`
	WorkloadMinutes map[string]int `json:"workloadMinutes"`
}

// CourierResponse is one courier in GET /api/couriers.
type CourierResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	VehicleType  string `json:"vehicleType,omitempty"`
	VehiclePlate string `json:"vehiclePlate,omitempty"`
	Status       string `json:"status"`
}

// DeliveryResponse is the body of GET /api/delivery/:orderId.
type DeliveryResponse struct {
	ID          string                   `json:"id"`
	OrderID     string                   `json:"orderId"`
	Status      string                   `json:"status"`
	Address     string                   `json:"address"`
	Fee         int64                    `json:"fee"`
	AssignedAt  *time.Time               `json:"assignedAt,omitempty"`
	PickedUpAt  *time.Time               `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time               `json:"deliveredAt,omitempty"`
	CancelledAt *time.Time               `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
	Courier     *DeliveryCourierResponse `json:"courier,omitempty"`
}

// DeliveryCourierResponse is the courier slice of DeliveryResponse.
type DeliveryCourierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

func toOrderResponse(src queries.GetUncompletedOrdersQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(src.Lines))
	for _, line := range src.Lines {
		items = append(items, OrderItemResponse{
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			Category:   line.Category,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Notes:      line.Notes,
		})
	}

	return OrderResponse{
		ID:           src.ID.String(),
		Number:       src.Number,
		Type:         src.OrderType,
		Status:       src.Status,
		Priority:     src.Priority,
		CustomerName: src.CustomerName,
		TableNumber:  src.TableNumber,
		Total:        src.Total,
		CreatedAt:    src.CreatedAt,
		Items:        items,
	}
}

func toQueueEntryResponse(src services.QueueEntry) QueueEntryResponse {
	return QueueEntryResponse{
		TicketItemID:       src.TicketItemID.String(),
		TicketID:           src.TicketID.String(),
		OrderID:            src.OrderID.String(),
		OrderNumber:        src.OrderNumber,
		TableNumber:        src.TableNumber,
		ItemName:           src.ItemName,
		Quantity:           src.Quantity,
		Notes:              src.Notes,
		Station:            src.Department.String(),
		Priority:           src.Priority.String(),
		Status:             src.Status.String(),
		PreparationMinutes: src.PreparationMinutes,
		EstimatedStart:     src.EstimatedStart,
		EstimatedEnd:       src.EstimatedEnd,
	}
}

func toQueueStatsResponse(src services.QueueStats) QueueStatsResponse {
	workload := make(map[string]int, len(src.WorkloadMinutes))
	for department, minutes := range src.WorkloadMinutes {
		workload[department.String()] = minutes
	}

	return QueueStatsResponse{
		TotalItems:      src.TotalItems,
		UrgentItems:     src.UrgentItems,
		AvgWaitMinutes:  src.AvgWaitMinutes,
		WorkloadMinutes: workload,
	}
}

func toDeliveryResponse(src queries.GetDeliveryByOrderQueryResponse) DeliveryResponse {
	resp := DeliveryResponse{
		ID:          src.ID.String(),
		OrderID:     src.OrderID.String(),
		Status:      src.Status,
		Address:     src.Address,
		Fee:         src.Fee,
		AssignedAt:  src.AssignedAt,
		PickedUpAt:  src.PickedUpAt,
		DeliveredAt: src.DeliveredAt,
		CancelledAt: src.CancelledAt,
		CreatedAt:   src.CreatedAt,
	}

	if src.Courier != nil {
		resp.Courier = &DeliveryCourierResponse{
			ID:    src.Courier.ID.String(),
			Name:  src.Courier.Name,
			Phone: src.Courier.Phone,
		}
	}

	return resp
}
