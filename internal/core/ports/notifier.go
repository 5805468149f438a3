package ports

import (
	"context"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/order"
)

// Notifier delivers customer-facing notifications about order progress.
//
// Notification delivery is best-effort. Callers treat a returned error as a
// condition to log, never as a reason to fail the operation that triggered
// the notification.
type Notifier interface {
	// NotifyOrderStatusChanged tells the order's owner about a status
	// change.
	NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) error

	// NotifyDriverAssigned tells the order's owner which driver will
	// handle the pickup.
	NotifyDriverAssigned(ctx context.Context, aggregate *order.Order, assigned *driver.Driver) error
}
