package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer's laundry service request. It is the aggregate
// root for the ordering flow and carries the service category, pickup address,
// the ordered list of items, and the payment total.
//
// Order maintains these invariants:
//   - Valid unique identifier and owning user identifier
//   - Non-empty category, address, and items list
//   - Non-negative total
//   - Status is always one of the defined enum values
//
// The status progression is intentionally NOT restricted beyond enum
// membership: the store allows any caller to write any valid status, and
// concurrent writers race with last-write-wins semantics. Orders are never
// deleted; completed and cancelled are soft terminal states.
type Order struct {
	id         kernel.UUID
	userID     kernel.UUID
	category   string
	address    string
	items      []string
	total      kernel.Money
	createdAt  time.Time
	pickupTime *time.Time
	notes      string
	status     Status

	isConstructed bool
}

// NewOrder creates a new Order in StatusPending with createdAt stamped at
// construction time.
//
// Parameters:
//   - id: unique order identifier
//   - userID: owning user identifier
//   - category: service type, e.g. "wash-and-fold" (must be non-empty)
//   - address: pickup/delivery address (must be non-empty)
//   - items: ordered item descriptions (must be non-empty)
//   - total: payment total (must be constructed Money)
//   - pickupTime: optional requested pickup time
//   - notes: optional free-text instructions
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	category string,
	address string,
	items []string,
	total kernel.Money,
	pickupTime *time.Time,
	notes string,
) (*Order, error) {
	order := &Order{
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		notes:         notes,
		isConstructed: true,
	}

	if pickupTime != nil {
		t := pickupTime.UTC()
		order.pickupTime = &t
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setCategory(category),
		order.setAddress(address),
		order.setItems(items),
		order.setTotal(total),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
// Unlike NewOrder it accepts the stored status and creation time and validates
// them, so corrupt rows fail loudly instead of producing invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	category string,
	address string,
	items []string,
	total kernel.Money,
	createdAt time.Time,
	pickupTime *time.Time,
	notes string,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, userID, category, address, items, total, pickupTime, notes)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	order.createdAt = createdAt.UTC()
	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Category returns the service type of the order.
func (o *Order) Category() string {
	return o.category
}

// Address returns the pickup/delivery address.
func (o *Order) Address() string {
	return o.address
}

// Items returns the ordered list of item descriptions.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []string {
	items := make([]string, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the payment total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns the creation timestamp in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PickupTime returns the requested pickup time, or nil when not set.
func (o *Order) PickupTime() *time.Time {
	return o.pickupTime
}

// Notes returns the free-text instructions, possibly empty.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus writes a new status after checking enum membership.
// Any valid status is accepted from any state, including writing the current
// status again: repeated completion requests must stay errorless so that a
// retried update is harmless.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	o.category = category
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []string) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item == "" {
			return errs.NewValueIsInvalidErrorWithCause("items",
				errors.New("item description is empty"))
		}
	}
	o.items = make([]string, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}
