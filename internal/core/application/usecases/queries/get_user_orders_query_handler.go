package queries

import (
	"context"
	sqldriver "database/sql/driver"
	"errors"
	"log/slog"
	"net"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a customer's order history from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
//
// The order list is a degradable read: when the database is unreachable the
// handler returns an empty history instead of an error, so the customer's
// screen renders with no orders rather than failing. Genuine query errors
// still propagate.
type GetUserOrdersQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB, logger *slog.Logger) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{
		db:     db,
		logger: logger.With("component", "get_user_orders_handler"),
	}
}

// Handle executes the query. Orders come back newest first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category,
			address,
			items,
			total_amount,
			status,
			created_at,
			pickup_time,
			notes
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().String()).Rows()
	if err != nil {
		if isServiceUnavailable(err) {
			h.logger.WarnContext(ctx, "order history unavailable, returning empty list",
				"user_id", query.UserID().String(), "error", err)
			return orders, nil
		}
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetUserOrdersQueryResponse
		var id uuid.UUID
		var items pq.StringArray

		err = rows.Scan(
			&id,
			&response.Category,
			&response.Address,
			&items,
			&response.TotalAmount,
			&response.Status,
			&response.CreatedAt,
			&response.PickupTime,
			&response.Notes,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID
		response.UserID = query.UserID()
		response.Items = items
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		if isServiceUnavailable(err) {
			h.logger.WarnContext(ctx, "order history unavailable, returning empty list",
				"user_id", query.UserID().String(), "error", err)
			return make([]GetUserOrdersQueryResponse, 0), nil
		}
		return nil, err
	}

	return orders, nil
}

// isServiceUnavailable reports whether the error means the database cannot be
// reached at all, as opposed to rejecting this particular query. Covers
// Postgres connection exception classes 08 and 57P03 plus transport errors.
func isServiceUnavailable(err error) bool {
	if errors.Is(err, errs.ErrServiceUnavailable) || errors.Is(err, sqldriver.ErrBadConn) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Class() == "08" || pqErr.Code == "57P03" {
			return true
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
