package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	total, err := kernel.NewMoney(4500)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"wash-and-fold", "12 Admiralty Way, Lekki",
		[]string{"3x shirts", "2x trousers"}, total, nil, "")
	require.NoError(t, err)
	return aggregate
}

func newDriverInStatus(t *testing.T, name string, status driver.Status) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(
		kernel.NewUUID(), name, "+2348012345678", "", driver.VehicleMotorcycle, "LND-204-KJA")
	require.NoError(t, err)
	require.NoError(t, d.ChangeStatus(status))
	return d
}

func TestDriverDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewDriverDispatcher()

	t.Run("picks first available driver and marks it busy", func(t *testing.T) {
		busy := newDriverInStatus(t, "Tunde", driver.StatusBusy)
		offline := newDriverInStatus(t, "Chioma", driver.StatusOffline)
		first := newDriverInStatus(t, "Emeka", driver.StatusAvailable)
		second := newDriverInStatus(t, "Aisha", driver.StatusAvailable)

		selected, err := dispatcher.Dispatch(newTestOrder(t), []*driver.Driver{busy, offline, first, second})

		require.NoError(t, err)
		assert.True(t, selected.ID().IsEqual(first.ID()))
		assert.Equal(t, driver.StatusBusy, selected.Status())
		assert.Equal(t, driver.StatusAvailable, second.Status())
	})

	t.Run("returns ErrDriverNotFound when pool is empty", func(t *testing.T) {
		_, err := dispatcher.Dispatch(newTestOrder(t), nil)

		require.ErrorIs(t, err, services.ErrDriverNotFound)
	})

	t.Run("returns ErrDriverNotFound when nobody is available", func(t *testing.T) {
		pool := []*driver.Driver{
			newDriverInStatus(t, "Tunde", driver.StatusBusy),
			newDriverInStatus(t, "Chioma", driver.StatusOffline),
		}

		_, err := dispatcher.Dispatch(newTestOrder(t), pool)

		require.ErrorIs(t, err, services.ErrDriverNotFound)
	})

	t.Run("rejects unconstructed order", func(t *testing.T) {
		pool := []*driver.Driver{newDriverInStatus(t, "Emeka", driver.StatusAvailable)}

		_, err := dispatcher.Dispatch(&order.Order{}, pool)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.Equal(t, driver.StatusAvailable, pool[0].Status())
	})

	t.Run("rejects unconstructed driver in pool", func(t *testing.T) {
		pool := []*driver.Driver{{}}

		_, err := dispatcher.Dispatch(newTestOrder(t), pool)

		require.ErrorIs(t, err, driver.ErrDriverIsNotConstructed)
	})
}
