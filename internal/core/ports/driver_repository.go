package ports

import (
	"context"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll retrieves every registered driver.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// GetAllAvailable retrieves drivers currently in the available status,
	// in stable registration order. Dispatch takes the first of them.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
}
