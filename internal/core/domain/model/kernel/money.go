package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when using an improperly initialized Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a non-negative currency amount in minor units (cents).
// Order totals are stored and compared in minor units to avoid floating-point
// rounding. Money is an immutable value object; the zero value is invalid.
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money amount in minor units. Amounts must be
// non-negative; there is no refund or credit flow that would need one.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Money was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted with two decimal places, e.g. "25.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
