// Package user provides the customer account aggregate used by registration
// and login.
package user

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when using an improperly initialized User.
var ErrUserIsNotConstructed = errors.New(
	"User must be created via NewUser or RestoreUser constructor")

// User is a customer account. The password is stored only as a bcrypt hash;
// the aggregate never sees the plaintext.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	passwordHash string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a new account. Email is lowercased before storage so login
// lookups are case-insensitive.
func NewUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	passwordHash string,
) (*User, error) {
	account := &User{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setName(name),
		account.setEmail(email),
		account.setPhone(phone),
		account.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreUser reconstructs an account from persistent storage.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	passwordHash string,
	createdAt time.Time,
) (*User, error) {
	account, err := NewUser(id, name, email, phone, passwordHash)
	if err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	account.createdAt = createdAt.UTC()
	return account, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the account's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the customer's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the lowercased login email.
func (u *User) Email() string {
	return u.email
}

// Phone returns the contact phone number, empty when none was supplied.
func (u *User) Phone() string {
	return u.phone
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns when the account was registered.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

// Phone is optional; an account registered without one stays reachable by email.
func (u *User) setPhone(phone string) error {
	u.phone = strings.TrimSpace(phone)
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}
