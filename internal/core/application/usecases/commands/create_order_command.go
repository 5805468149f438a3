package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new laundry order.
// Encapsulates what is being cleaned, where to pick it up, and what the
// customer pays.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	userID     kernel.UUID
	category   string
	address    string
	items      []string
	total      kernel.Money
	pickupTime *time.Time
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the service category, the pickup address, and that
// at least one item is listed. Pickup time and notes are optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	category string,
	address string,
	items []string,
	total kernel.Money,
	pickupTime *time.Time,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		pickupTime: pickupTime,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setCategory(category),
		orderCommand.setAddress(address),
		orderCommand.setItems(items),
		orderCommand.setTotal(total),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Category returns the requested service category.
func (c CreateOrderCommand) Category() string {
	return c.category
}

// Address returns the pickup address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Items returns the item descriptions.
func (c CreateOrderCommand) Items() []string {
	return c.items
}

// Total returns the payment total.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

// PickupTime returns the requested pickup time, or nil.
func (c CreateOrderCommand) PickupTime() *time.Time {
	return c.pickupTime
}

// Notes returns free-text customer instructions.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []string) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = make([]string, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	c.total = total
	return nil
}
