// Package userrepo persists customer accounts with GORM.
package userrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for customer accounts.
// The email carries a unique index; registration relies on it to reject
// duplicate accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(account *user.User) UserDTO {
	return UserDTO{
		ID:           account.ID().Bytes(),
		Name:         account.Name(),
		Email:        account.Email(),
		Phone:        account.Phone(),
		PasswordHash: account.PasswordHash(),
		CreatedAt:    account.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.Phone, dto.PasswordHash, dto.CreatedAt)
}
