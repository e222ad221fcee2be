package notify_test

import (
	"testing"

	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusNotification(orderID, requesterID, providerID kernel.UUID) ports.Notification {
	return ports.Notification{
		Type:         ports.NotificationOrderStatus,
		TargetUserID: requesterID,
		OrderID:      &orderID,
		RequesterID:  requesterID,
		ProviderID:   providerID,
		OldStatus:    "pending",
		NewStatus:    "active",
	}
}

func TestHub_Dispatch_PublishesChangeEvents(t *testing.T) {
	hub := notify.NewHub(nil)
	orderID := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	providerID := kernel.NewUUID()

	events, cancel := hub.Subscribe(ports.ChangeFilter{})
	defer cancel()

	err := hub.Dispatch(t.Context(), statusNotification(orderID, requesterID, providerID))
	require.NoError(t, err)

	event := <-events
	assert.True(t, event.OrderID.IsEqual(orderID))
	assert.True(t, event.RequesterID.IsEqual(requesterID))
	assert.True(t, event.ProviderID.IsEqual(providerID))
	assert.Equal(t, "pending", event.OldStatus)
	assert.Equal(t, "active", event.NewStatus)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestHub_Dispatch_IgnoresNonStatusNotifications(t *testing.T) {
	hub := notify.NewHub(nil)

	events, cancel := hub.Subscribe(ports.ChangeFilter{})
	defer cancel()

	err := hub.Dispatch(t.Context(), ports.Notification{
		Type:         ports.NotificationPayment,
		TargetUserID: kernel.NewUUID(),
	})
	require.NoError(t, err)

	assert.Empty(t, events)
}

func TestHub_Subscribe_OrderFilter(t *testing.T) {
	hub := notify.NewHub(nil)
	watchedID := kernel.NewUUID()

	events, cancel := hub.Subscribe(ports.ChangeFilter{OrderID: &watchedID})
	defer cancel()

	hub.Publish(ports.ChangeEvent{OrderID: kernel.NewUUID()})
	hub.Publish(ports.ChangeEvent{OrderID: watchedID, NewStatus: "active"})

	require.Len(t, events, 1)
	event := <-events
	assert.True(t, event.OrderID.IsEqual(watchedID))
}

func TestHub_Subscribe_UserFilter(t *testing.T) {
	hub := notify.NewHub(nil)
	userID := kernel.NewUUID()

	events, cancel := hub.Subscribe(ports.ChangeFilter{UserID: &userID})
	defer cancel()

	// The user can be either party of the order.
	hub.Publish(ports.ChangeEvent{OrderID: kernel.NewUUID(), RequesterID: userID})
	hub.Publish(ports.ChangeEvent{OrderID: kernel.NewUUID(), ProviderID: userID})
	hub.Publish(ports.ChangeEvent{OrderID: kernel.NewUUID(), RequesterID: kernel.NewUUID()})

	assert.Len(t, events, 2)
}

func TestHub_Subscribe_FanOut(t *testing.T) {
	hub := notify.NewHub(nil)

	first, cancelFirst := hub.Subscribe(ports.ChangeFilter{})
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe(ports.ChangeFilter{})
	defer cancelSecond()

	hub.Publish(ports.ChangeEvent{OrderID: kernel.NewUUID()})

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestHub_Cancel(t *testing.T) {
	hub := notify.NewHub(nil)

	events, cancel := hub.Subscribe(ports.ChangeFilter{})

	cancel()
	// Cancel is idempotent.
	cancel()

	_, open := <-events
	assert.False(t, open)

	// Publishing after cancellation reaches nobody and must not panic.
	hub.Publish(ports.ChangeEvent{OrderID: kernel.NewUUID()})
}

func TestHub_Publish_DropsWhenBufferFull(t *testing.T) {
	hub := notify.NewHub(nil)

	events, cancel := hub.Subscribe(ports.ChangeFilter{})
	defer cancel()

	// Overrun the buffer without a reader; the writer must never block.
	for range 32 {
		hub.Publish(ports.ChangeEvent{OrderID: kernel.NewUUID()})
	}

	assert.Len(t, events, 16)
}
