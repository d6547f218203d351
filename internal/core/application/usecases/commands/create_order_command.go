package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrOrderLinesAreRequired   = errors.New("at least one order line is required")
	ErrLineQuantityIsInvalid   = errors.New("line quantity must be greater than 0")
	ErrDeliveryAddressRequired = errors.New("address is required for delivery orders")
)

// OrderLine is one requested menu item within a new order. Name, category,
// price and preparation time are resolved from the menu catalog by the
// handler, not supplied by the caller.
type OrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
	Notes      string
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the customer snapshot, order type and requested lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.TypeDineIn,
//	    order.PriorityNormal, "Dana", "+15550100", "", 12, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, menuCatalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderType       order.Type
	priority        order.Priority
	customerName    string
	customerPhone   string
	customerAddress string
	tableNumber     int
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, enum values, the customer name and every line.
// Delivery orders must carry a destination address.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	priority order.Priority,
	customerName string,
	customerPhone string,
	customerAddress string,
	tableNumber int,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTyping(orderType, priority),
		orderCommand.setCustomer(customerName, customerPhone, customerAddress, orderType),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.tableNumber = tableNumber
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns the requested order type.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Priority returns the initial queue priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's contact phone, possibly empty.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the delivery destination, empty for non-delivery orders.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// TableNumber returns the dine-in table number, 0 when not applicable.
func (c CreateOrderCommand) TableNumber() int {
	return c.tableNumber
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTyping(orderType order.Type, priority order.Priority) error {
	if err := errors.Join(orderType.Validate(), priority.Validate()); err != nil {
		return err
	}

	c.orderType = orderType
	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, phone, address string, orderType order.Type) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	if orderType == order.TypeDelivery && address == "" {
		return ErrDeliveryAddressRequired
	}

	c.customerName = name
	c.customerPhone = phone
	c.customerAddress = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}
