package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriversQueryHandler retrieves the driver roster from the database.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver roster queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the query. Drivers come back in registration order so
// dispatch previews match what the assignment sweep will pick.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]GetDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			vehicle_number,
			rating,
			total_deliveries,
			status,
			last_lat,
			last_lng,
			last_reported_at
		FROM drivers
	`
	args := make([]any, 0, 1)
	if query.AvailableOnly() {
		sql += " WHERE status = ?"
		args = append(args, "available")
	}
	sql += " ORDER BY created_at"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]GetDriversQueryResponse, 0)

	for rows.Next() {
		var response GetDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Phone,
			&response.VehicleType,
			&response.VehicleNumber,
			&response.Rating,
			&response.TotalDeliveries,
			&response.Status,
			&response.LastLatitude,
			&response.LastLongitude,
			&response.LastReportedAt,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = driverID
		drivers = append(drivers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
