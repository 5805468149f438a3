package notify_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"laundry/internal/adapters/out/notify"
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	total, err := kernel.NewMoney(2500)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "wash-and-fold", "7 Glover Road",
		[]string{"2x bedsheets"}, total, nil, "")
	require.NoError(t, err)
	return aggregate
}

func testDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(
		kernel.NewUUID(), "Tunde", "+2348011112222", "tunde@example.com",
		driver.VehicleVan, "LND-332-KJ")
	require.NoError(t, err)
	return d
}

func TestLogNotifier_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	notifier := notify.NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))
	aggregate := testOrder(t)

	require.NoError(t, notifier.NotifyOrderStatusChanged(context.Background(), aggregate))
	require.NoError(t, notifier.NotifyDriverAssigned(context.Background(), aggregate, testDriver(t)))

	out := buf.String()
	assert.Contains(t, out, "order status notification")
	assert.Contains(t, out, "driver assignment notification")
	assert.Contains(t, out, aggregate.ID().String())
	assert.Contains(t, out, "Tunde")
}

func TestLogNotifier_RejectsUnconstructedOrder(t *testing.T) {
	notifier := notify.NewLogNotifier(slog.New(slog.DiscardHandler))

	err := notifier.NotifyOrderStatusChanged(context.Background(), &order.Order{})

	require.Error(t, err)
}

func TestStatusChangeMessage(t *testing.T) {
	aggregate := testOrder(t)

	subject, body := notify.StatusChangeMessage(aggregate)

	assert.Equal(t, "Your laundry order is pending", subject)
	assert.Contains(t, body, aggregate.ID().String())
	assert.Contains(t, body, "wash-and-fold")
}

func TestDriverAssignedMessage(t *testing.T) {
	aggregate := testOrder(t)
	assigned := testDriver(t)

	subject, body := notify.DriverAssignedMessage(aggregate, assigned)

	assert.Equal(t, "A driver is on the way for your laundry pickup", subject)
	assert.Contains(t, body, "Tunde")
	assert.Contains(t, body, "LND-332-KJ")
	assert.Contains(t, body, "+2348011112222")
}

func TestNewEmailNotifier_Validation(t *testing.T) {
	_, err := notify.NewEmailNotifier("", "Laundry", "noreply@example.com", nil)
	require.Error(t, err)

	_, err = notify.NewEmailNotifier("key", "Laundry", "", nil)
	require.Error(t, err)

	_, err = notify.NewEmailNotifier("key", "Laundry", "noreply@example.com", nil)
	require.Error(t, err)
}
