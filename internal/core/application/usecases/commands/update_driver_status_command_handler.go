package commands

import (
	"context"
)

// UpdateDriverStatusCommandHandler handles driver availability changes.
//
// Completing a delivery does not revert the driver to available; drivers
// flip themselves back through this command when ready for the next run.
type UpdateDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverStatusCommandHandler creates a handler for driver status changes.
func NewUpdateDriverStatusCommandHandler(uowFactory DriverUoWFactory) UpdateDriverStatusCommandHandler {
	return UpdateDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h UpdateDriverStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDriverStatusCommand) error {
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

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
