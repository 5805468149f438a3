package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT user_id, category, address, items, total_amount, status,
		       created_at, pickup_time, notes
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var response GetUserOrdersQueryResponse
	var userID string
	var items pq.StringArray

	err := row.Scan(
		&userID,
		&response.Category,
		&response.Address,
		&items,
		&response.TotalAmount,
		&response.Status,
		&response.CreatedAt,
		&response.PickupTime,
		&response.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetUserOrdersQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	owner, err := kernel.UUIDFromString(userID)
	if err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	response.ID = query.OrderID()
	response.UserID = owner
	response.Items = items

	return response, nil
}
