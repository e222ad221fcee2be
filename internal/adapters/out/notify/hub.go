// Package notify provides the in-process implementation of the notification
// dispatcher and the order change stream. Delivery is push-based and lossy:
// a subscriber that cannot keep up misses events rather than blocking the
// writer that produced them.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// subscriberBuffer is the per-subscriber channel capacity. A full buffer
// drops the event for that subscriber only.
const subscriberBuffer = 16

type subscriber struct {
	filter ports.ChangeFilter
	ch     chan ports.ChangeEvent
}

// Hub fans order notifications out to in-process subscribers. It implements
// both ports.NotificationDispatcher and ports.ChangeStream: dispatched
// order_status notifications are also published as change events.
//
// Hub is safe for concurrent use.
type Hub struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[int]*subscriber
	nextID      int
}

// NewHub creates a notification hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:      logger,
		subscribers: make(map[int]*subscriber),
	}
}

// Dispatch delivers one notification. Order status notifications additionally
// publish a change event to matching subscribers. Dispatch never blocks and
// never fails the caller: delivery problems are logged and swallowed.
//
// A transition dispatched to both parties publishes one event per dispatch;
// events are idempotent signals, so subscribers tolerate seeing a transition
// more than once.
func (h *Hub) Dispatch(_ context.Context, n ports.Notification) error {
	h.logger.Info("notification dispatched",
		"type", string(n.Type),
		"target", n.TargetUserID.String(),
	)

	if n.Type != ports.NotificationOrderStatus || n.OrderID == nil {
		return nil
	}

	h.publish(ports.ChangeEvent{
		OrderID:     *n.OrderID,
		RequesterID: n.RequesterID,
		ProviderID:  n.ProviderID,
		OldStatus:   n.OldStatus,
		NewStatus:   n.NewStatus,
		OccurredAt:  time.Now().UTC(),
	})
	return nil
}

// Publish pushes a change event to every matching subscriber.
func (h *Hub) Publish(event ports.ChangeEvent) {
	h.publish(event)
}

// Subscribe registers a change event subscription. The returned cancel
// function removes the subscription and closes the channel; it is safe to
// call more than once.
func (h *Hub) Subscribe(filter ports.ChangeFilter) (<-chan ports.ChangeEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	sub := &subscriber{
		filter: filter,
		ch:     make(chan ports.ChangeEvent, subscriberBuffer),
	}
	h.subscribers[id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, id)
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

func (h *Hub) publish(event ports.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		if !matches(sub.filter, event) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			h.logger.Warn("change event dropped, subscriber buffer full",
				"order_id", event.OrderID.String(),
			)
		}
	}
}

// matches applies a subscription filter. Nil fields match everything; a
// UserID filter matches events where the user is either party.
func matches(filter ports.ChangeFilter, event ports.ChangeEvent) bool {
	if filter.OrderID != nil && !filter.OrderID.IsEqual(event.OrderID) {
		return false
	}
	if filter.UserID != nil && !userParticipates(*filter.UserID, event) {
		return false
	}
	return true
}

func userParticipates(userID kernel.UUID, event ports.ChangeEvent) bool {
	return userID.IsEqual(event.RequesterID) || userID.IsEqual(event.ProviderID)
}
