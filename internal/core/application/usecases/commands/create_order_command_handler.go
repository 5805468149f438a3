package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// New orders start in the pending status and wait for back-office
// confirmation.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for the order confirmation message.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order placement command.
// Persists the order inside a transaction, then sends a best-effort
// notification to the customer. A failed notification is logged and never
// fails the order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), cmd.Category(), cmd.Address(),
		cmd.Items(), cmd.Total(), cmd.PickupTime(), cmd.Notes())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.NotifyOrderStatusChanged(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "order placed but notification failed",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
