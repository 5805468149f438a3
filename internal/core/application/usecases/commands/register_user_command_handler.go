package commands

import (
	"context"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler handles account registration. Passwords are
// hashed with bcrypt before anything touches storage.
type RegisterUserCommandHandler struct {
	users ports.UserRepository
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(users ports.UserRepository) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{users: users}
}

// Handle processes the registration command. Fails with the repository's
// duplicate-email error when the address is already registered.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account, err := user.NewUser(
		cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), string(hash))
	if err != nil {
		return err
	}

	return h.users.Add(ctx, account)
}
