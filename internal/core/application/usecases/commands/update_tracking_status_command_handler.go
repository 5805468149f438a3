package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tracking"
	"laundry/internal/core/ports"
)

// UpdateTrackingStatusCommandHandler advances a delivery run through its
// statuses and feeds live subscribers.
//
// Reaching picked_up or delivered stamps the corresponding actual time on
// the record. Reaching delivered also increments the driver's delivery
// counter, but does not flip the driver back to available; the driver does
// that through UpdateDriverStatusCommand.
type UpdateTrackingStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.TrackingPublisher
}

// NewUpdateTrackingStatusCommandHandler creates a handler for delivery run
// progress updates.
func NewUpdateTrackingStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.TrackingPublisher,
) UpdateTrackingStatusCommandHandler {
	return UpdateTrackingStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the progress update.
func (h UpdateTrackingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTrackingStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackingRepo := uow.TrackingRepository()

	record, err := trackingRepo.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = record.ChangeStatus(cmd.NewStatus(), now); err != nil {
		return err
	}

	if err = trackingRepo.Update(ctx, record); err != nil {
		return err
	}

	if cmd.NewStatus() == tracking.StatusDelivered {
		if err = h.recordDelivery(ctx, uow, record.DriverID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.TrackingEvent{
		OrderID:    record.OrderID(),
		TrackingID: record.ID(),
		Status:     record.Status(),
		Location:   record.CurrentLocation(),
		OccurredAt: now,
	})

	return nil
}

func (h UpdateTrackingStatusCommandHandler) recordDelivery(ctx context.Context, uow UoW, driverID kernel.UUID) error {
	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, driverID)
	if err != nil {
		return err
	}

	aggregate.RecordDelivery()
	return driverRepo.Update(ctx, aggregate)
}
