package commands

import (
	"context"
	"errors"
	"log/slog"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// DriverAssigner triggers driver assignment for a confirmed order.
// Satisfied by AssignDriverCommandHandler; abstracted so the status
// orchestration can be tested without the full assignment stack.
type DriverAssigner interface {
	Handle(ctx context.Context, cmd AssignDriverCommand) error
}

// AdvanceOrderCommandHandler orchestrates an order status change and its
// side effects.
//
// The status write is the only step that can fail the command. Everything
// that follows is best effort: the customer notification, and, when the
// order reaches the confirmed status, the attempt to assign a driver. Side
// effect failures are logged and swallowed so the already-persisted status
// change is never reported as a failure.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   DriverAssigner
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for order status changes.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	assigner DriverAssigner,
	notifier ports.Notifier,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		notifier:   notifier,
		logger:     logger.With("component", "advance_order_handler"),
	}
}

// Handle processes the status change command.
// Loads the order, writes the new status inside a transaction, then runs
// the side effects. When no driver is available for a confirmed order the
// assignment is skipped silently; the order stays confirmed and the sweep
// job retries later.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.runSideEffects(ctx, aggregate)
	return nil
}

func (h AdvanceOrderCommandHandler) runSideEffects(ctx context.Context, aggregate *order.Order) {
	if err := h.notifier.NotifyOrderStatusChanged(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "status changed but notification failed",
			"order_id", aggregate.ID().String(),
			"status", aggregate.Status().String(),
			"error", err)
	}

	if aggregate.Status() != order.StatusConfirmed {
		return
	}

	assignCmd, err := NewAssignDriverCommand(aggregate.ID())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build assignment command",
			"order_id", aggregate.ID().String(), "error", err)
		return
	}

	err = h.assigner.Handle(ctx, assignCmd)
	switch {
	case errors.Is(err, ErrNoDriverAvailable):
		h.logger.InfoContext(ctx, "no driver available, order waits for sweep",
			"order_id", aggregate.ID().String())
	case errors.Is(err, ErrOrderAlreadyAssigned):
		// A record already exists, nothing to do.
	case err != nil:
		h.logger.WarnContext(ctx, "order confirmed but assignment failed",
			"order_id", aggregate.ID().String(), "error", err)
	}
}
