// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer and status for the history and sweep queries.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;index"`
	Category    string
	Address     string
	Items       pq.StringArray `gorm:"type:text[]"`
	TotalAmount int64
	Status      string         `gorm:"index"`
	CreatedAt   time.Time
	PickupTime  *time.Time
	Notes       string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		Category:    aggregate.Category(),
		Address:     aggregate.Address(),
		Items:       pq.StringArray(aggregate.Items()),
		TotalAmount: aggregate.Total().Amount(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		PickupTime:  aggregate.PickupTime(),
		Notes:       aggregate.Notes(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including stored status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.Category,
		dto.Address,
		[]string(dto.Items),
		total,
		dto.CreatedAt,
		dto.PickupTime,
		dto.Notes,
		order.Status(dto.Status),
	)
}
