package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with creation timestamp", func(t *testing.T) {
		before := time.Now().UTC()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			"wash-and-fold",
			"12 Admiralty Way, Lekki",
			[]string{"Shirt", "Trouser"},
			mustMoney(t, 2500),
			nil,
			"",
		)
		after := time.Now().UTC()

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.False(t, o.CreatedAt().Before(before))
		assert.False(t, o.CreatedAt().After(after))
		assert.Equal(t, []string{"Shirt", "Trouser"}, o.Items())
		assert.Equal(t, int64(2500), o.Total().Amount())
		assert.Nil(t, o.PickupTime())
		assert.NoError(t, o.Validate())
	})

	t.Run("keeps optional pickup time and notes", func(t *testing.T) {
		pickup := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
		o, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			"dry-cleaning",
			"4 Broad Street",
			[]string{"Suit"},
			mustMoney(t, 7000),
			&pickup,
			"Ring the bell twice",
		)

		require.NoError(t, err)
		require.NotNil(t, o.PickupTime())
		assert.Equal(t, pickup, *o.PickupTime())
		assert.Equal(t, "Ring the bell twice", o.Notes())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		validID := kernel.NewUUID()
		validItems := []string{"Shirt"}
		validTotal := mustMoney(t, 1000)

		testCases := []struct {
			name  string
			build func() (*order.Order, error)
		}{
			{"zero order id", func() (*order.Order, error) {
				return order.NewOrder(kernel.UUID{}, validID, "wash", "addr", validItems, validTotal, nil, "")
			}},
			{"zero user id", func() (*order.Order, error) {
				return order.NewOrder(validID, kernel.UUID{}, "wash", "addr", validItems, validTotal, nil, "")
			}},
			{"empty category", func() (*order.Order, error) {
				return order.NewOrder(validID, kernel.NewUUID(), "", "addr", validItems, validTotal, nil, "")
			}},
			{"empty address", func() (*order.Order, error) {
				return order.NewOrder(validID, kernel.NewUUID(), "wash", "", validItems, validTotal, nil, "")
			}},
			{"no items", func() (*order.Order, error) {
				return order.NewOrder(validID, kernel.NewUUID(), "wash", "addr", nil, validTotal, nil, "")
			}},
			{"blank item", func() (*order.Order, error) {
				return order.NewOrder(validID, kernel.NewUUID(), "wash", "addr", []string{"Shirt", ""}, validTotal, nil, "")
			}},
			{"unconstructed total", func() (*order.Order, error) {
				return order.NewOrder(validID, kernel.NewUUID(), "wash", "addr", validItems, kernel.Money{}, nil, "")
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.build()
				require.Error(t, err)
			})
		}
	})

	t.Run("items are copied on construction and read", func(t *testing.T) {
		items := []string{"Shirt", "Trouser"}
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "wash", "addr", items, mustMoney(t, 100), nil, "")
		require.NoError(t, err)

		items[0] = "mutated"
		assert.Equal(t, "Shirt", o.Items()[0])

		read := o.Items()
		read[1] = "mutated"
		assert.Equal(t, "Trouser", o.Items()[1])
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores stored status and creation time", func(t *testing.T) {
		createdAt := time.Date(2026, 1, 5, 8, 30, 0, 0, time.UTC)
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "ironing", "addr",
			[]string{"Dress"}, mustMoney(t, 1500), createdAt, nil, "", order.StatusInProgress)

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects corrupt status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "ironing", "addr",
			[]string{"Dress"}, mustMoney(t, 1500), time.Now(), nil, "", order.Status("garbage"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "wash", "addr",
			[]string{"Shirt"}, mustMoney(t, 1000), nil, "")
		require.NoError(t, err)
		return o
	}

	t.Run("accepts any valid status from any state", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.StatusCompleted))
		assert.Equal(t, order.StatusCompleted, o.Status())

		// Backwards writes are permitted; the store does not enforce monotonicity.
		require.NoError(t, o.ChangeStatus(order.StatusPending))
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("repeated completion is errorless", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.StatusCompleted))
		require.NoError(t, o.ChangeStatus(order.StatusCompleted))
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Status("shipped"))
		require.Error(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "wash", "addr",
		[]string{"Shirt"}, mustMoney(t, 1000), nil, "")
	require.NoError(t, err)

	o2, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "wash", "addr",
		[]string{"Shirt"}, mustMoney(t, 1000), nil, "")
	require.NoError(t, err)

	assert.True(t, o1.IsEqual(o1))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}
