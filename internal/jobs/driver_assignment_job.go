package jobs

import (
	"context"
	"errors"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DriverAssignmentJob sweeps confirmed orders and dispatches available
// drivers to the ones still waiting. Runs every five seconds so orders
// confirmed while no driver was free get picked up as soon as one returns.
type DriverAssignmentJob struct {
	orders   ports.OrderRepository
	assigner commands.DriverAssigner
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDriverAssignmentJob creates the assignment sweep.
func NewDriverAssignmentJob(
	orders ports.OrderRepository,
	assigner commands.DriverAssigner,
	logger *slog.Logger,
) *DriverAssignmentJob {
	return &DriverAssignmentJob{
		orders:   orders,
		assigner: assigner,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "driver_assignment_job"),
	}
}

// Start begins the sweep on a five second schedule.
func (j *DriverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		j.Sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver assignment job started (running every 5s)")
	return nil
}

// Stop stops the sweep.
func (j *DriverAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver assignment job stopped")
}

// Sweep dispatches drivers to all confirmed orders that can take one.
// Orders that already have a driver and sweeps with no free drivers are
// expected business scenarios, not errors.
func (j *DriverAssignmentJob) Sweep(ctx context.Context) {
	waiting, err := j.orders.GetAllInStatus(ctx, order.StatusConfirmed)
	if err != nil {
		j.logger.ErrorContext(ctx, "Driver assignment sweep failed to list orders", "error", err)
		return
	}

	for _, aggregate := range waiting {
		cmd, err := commands.NewAssignDriverCommand(aggregate.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Driver assignment sweep built an invalid command",
				"order_id", aggregate.ID().String(), "error", err)
			continue
		}

		err = j.assigner.Handle(ctx, cmd)
		switch {
		case err == nil:
			j.logger.InfoContext(ctx, "Driver assigned by sweep",
				"order_id", aggregate.ID().String())
		case errors.Is(err, commands.ErrOrderAlreadyAssigned):
		case errors.Is(err, commands.ErrNoDriverAvailable):
			// Nobody is free; the rest of the sweep would hit the
			// same wall.
			return
		default:
			j.logger.ErrorContext(ctx, "Driver assignment sweep failed",
				"order_id", aggregate.ID().String(), "error", err)
		}
	}
}
