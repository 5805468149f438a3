package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
)

// UpdateDriverLocationCommandHandler records a driver position report.
// The driver's last known location is always updated; when the report names
// an order, the order's tracking record gets the same position and a live
// feed event is published.
type UpdateDriverLocationCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.TrackingPublisher
}

// NewUpdateDriverLocationCommandHandler creates a handler for driver
// position reports.
func NewUpdateDriverLocationCommandHandler(
	uowFactory UoWFactory,
	publisher ports.TrackingPublisher,
) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the position report.
func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	reportedAt := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.ReportLocation(cmd.Point(), reportedAt); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	var event *ports.TrackingEvent
	if orderID := cmd.OrderID(); orderID != nil {
		event, err = h.updateTracking(ctx, uow, cmd, *orderID, reportedAt)
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if event != nil {
		h.publisher.Publish(*event)
	}

	return nil
}

func (h UpdateDriverLocationCommandHandler) updateTracking(
	ctx context.Context,
	uow UoW,
	cmd UpdateDriverLocationCommand,
	orderID kernel.UUID,
	reportedAt time.Time,
) (*ports.TrackingEvent, error) {
	trackingRepo := uow.TrackingRepository()

	record, err := trackingRepo.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = record.ReportLocation(cmd.Point(), reportedAt); err != nil {
		return nil, err
	}

	if err = trackingRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return &ports.TrackingEvent{
		OrderID:    record.OrderID(),
		TrackingID: record.ID(),
		Status:     record.Status(),
		Location:   record.CurrentLocation(),
		OccurredAt: reportedAt,
	}, nil
}
