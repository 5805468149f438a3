package notify

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier writes notifications to the structured log instead of sending
// them. Used in local development and as a fallback when no email provider
// is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that only logs.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log-notifier")}
}

func (n *LogNotifier) NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "order status notification",
		"orderID", aggregate.ID().String(),
		"userID", aggregate.UserID().String(),
		"status", aggregate.Status().String())
	return nil
}

func (n *LogNotifier) NotifyDriverAssigned(
	ctx context.Context,
	aggregate *order.Order,
	assigned *driver.Driver,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := assigned.Validate(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "driver assignment notification",
		"orderID", aggregate.ID().String(),
		"userID", aggregate.UserID().String(),
		"driverID", assigned.ID().String(),
		"driver", assigned.Name())
	return nil
}
