package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tracking"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

var (
	// ErrNoDriverAvailable is returned when every registered driver is busy
	// or offline. Callers treat this as a transient condition, not a
	// failure.
	ErrNoDriverAvailable = errors.New("no driver available")

	// ErrOrderAlreadyAssigned is returned when a tracking record already
	// references the order.
	ErrOrderAlreadyAssigned = errors.New("order already assigned")
)

// AssignDriverCommandHandler matches a confirmed order with an available
// driver and opens its delivery tracking record.
//
// The driver status change and the tracking record are written in one
// transaction, so an order is never left pointing at a driver that was not
// marked busy. The order's own status is not touched here.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	estimator  ports.RouteEstimator
	publisher  ports.TrackingPublisher
	notifier   ports.Notifier
	facility   tracking.Stop
	logger     *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
// The facility stop names the laundry hub the run starts from.
func NewAssignDriverCommandHandler(
	uowFactory UoWFactory,
	estimator ports.RouteEstimator,
	publisher ports.TrackingPublisher,
	notifier ports.Notifier,
	facility tracking.Stop,
	logger *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		publisher:  publisher,
		notifier:   notifier,
		facility:   facility,
		logger:     logger.With("component", "assign_driver_handler"),
	}
}

// Handle processes the assignment command.
// Skips orders that already have a tracking record, takes the first
// available driver, and persists the driver and the new tracking record
// atomically. Route estimates and outbound messages are best effort.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	trackingRepo := uow.TrackingRepository()

	assigned, err := trackingRepo.ExistsForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if assigned {
		return ErrOrderAlreadyAssigned
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()

	drivers, err := driverRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	selected, err := services.NewDriverDispatcher().Dispatch(aggregate, drivers)
	if errors.Is(err, services.ErrDriverNotFound) {
		return ErrNoDriverAvailable
	}
	if err != nil {
		return err
	}

	// Customer coordinates are not geocoded; the facility point stands in
	// until the driver starts reporting positions.
	dropoff := tracking.Stop{Point: h.facility.Point, Address: aggregate.Address()}

	record, err := tracking.NewDeliveryTracking(
		kernel.NewUUID(), aggregate.ID(), selected.ID(), h.facility, dropoff)
	if err != nil {
		return err
	}

	h.setEstimates(ctx, record, selected)

	if err = trackingRepo.Add(ctx, record); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, selected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.TrackingEvent{
		OrderID:    record.OrderID(),
		TrackingID: record.ID(),
		Status:     record.Status(),
		OccurredAt: time.Now().UTC(),
	})

	if err = h.notifier.NotifyDriverAssigned(ctx, aggregate, selected); err != nil {
		h.logger.WarnContext(ctx, "driver assigned but notification failed",
			"order_id", aggregate.ID().String(),
			"driver_id", selected.ID().String(),
			"error", err)
	}

	return nil
}

func (h AssignDriverCommandHandler) setEstimates(
	ctx context.Context,
	record *tracking.DeliveryTracking,
	selected *driver.Driver,
) {
	origin := h.facility.Point
	if last := selected.LastLocation(); last != nil {
		origin = last.Point
	}

	estimate, err := h.estimator.Estimate(ctx, origin, record.Pickup().Point, record.Dropoff().Point)
	if err != nil {
		h.logger.WarnContext(ctx, "route estimate failed, assigning without it",
			"order_id", record.OrderID().String(), "error", err)
		return
	}

	now := time.Now().UTC()
	pickupETA := now.Add(estimate.TimeToPickup)
	deliveryETA := now.Add(estimate.TimeToDelivery)
	record.SetEstimates(&pickupETA, &deliveryETA)
}
