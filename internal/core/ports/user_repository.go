package ports

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
)

// ErrEmailTaken is returned when registering an email that already has an
// account.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the persistence contract for customer accounts.
type UserRepository interface {
	// Add persists a new account. Returns ErrEmailTaken when the email
	// already has an account.
	Add(ctx context.Context, account *user.User) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves an account by its login email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
