package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCouriersQueryHandler retrieves courier roster rows from the database.
type GetCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCouriersQueryHandler creates a handler for courier roster queries.
// Requires a GORM database connection for query execution.
func NewGetCouriersQueryHandler(db *gorm.DB) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{db: db}
}

// Handle executes the query to retrieve couriers.
// Returns couriers sorted by name, narrowed to available ones on request.
func (h GetCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetCouriersQuery,
) ([]GetCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			vehicle_plate,
			status
		FROM couriers
	`
	args := make([]any, 0, 1)
	if query.OnlyAvailable() {
		sql += " WHERE status = ?"
		args = append(args, courier.StatusAvailable)
	}
	sql += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]GetCouriersQueryResponse, 0)

	for rows.Next() {
		var resp GetCouriersQueryResponse
		var id uuid.UUID
		var status int16

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.VehicleType,
			&resp.VehiclePlate,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = courier.Status(status).String()

		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
