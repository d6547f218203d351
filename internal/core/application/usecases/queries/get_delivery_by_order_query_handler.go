package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryByOrderQueryHandler retrieves one order's delivery view with
// the assigned courier joined in.
type GetDeliveryByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderQueryHandler creates a handler for delivery view queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryByOrderQueryHandler(db *gorm.DB) GetDeliveryByOrderQueryHandler {
	return GetDeliveryByOrderQueryHandler{db: db}
}

// Handle executes the delivery view query.
// Returns errs.ObjectNotFoundError when the order has no delivery.
func (h GetDeliveryByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByOrderQuery,
) (GetDeliveryByOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryByOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.status,
			d.address,
			d.fee,
			d.assigned_at,
			d.picked_up_at,
			d.delivered_at,
			d.cancelled_at,
			d.created_at,
			c.id,
			c.name,
			c.phone
		FROM deliveries d
		LEFT JOIN couriers c ON c.id = d.courier_id
		WHERE d.order_id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetDeliveryByOrderQueryResponse
	var id, orderID uuid.UUID
	var status int16
	var courierID uuid.NullUUID
	var courierName, courierPhone sql.NullString

	err := row.Scan(
		&id,
		&orderID,
		&status,
		&resp.Address,
		&resp.Fee,
		&resp.AssignedAt,
		&resp.PickedUpAt,
		&resp.DeliveredAt,
		&resp.CancelledAt,
		&resp.CreatedAt,
		&courierID,
		&courierName,
		&courierPhone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryByOrderQueryResponse{}, errs.NewObjectNotFoundError(
			"orderId", query.OrderID().String())
	}
	if err != nil {
		return GetDeliveryByOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDeliveryByOrderQueryResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetDeliveryByOrderQueryResponse{}, err
	}
	resp.Status = delivery.Status(status).String()

	if courierID.Valid {
		courierUUID, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return GetDeliveryByOrderQueryResponse{}, idErr
		}
		resp.Courier = &DeliveryCourierResponse{
			ID:    courierUUID,
			Name:  courierName.String,
			Phone: courierPhone.String,
		}
	}

	return resp, nil
}
