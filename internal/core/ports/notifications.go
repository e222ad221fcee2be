package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// NotificationType classifies the events delivered to counterparties.
type NotificationType string

const (
	// NotificationOrderStatus announces an order status transition.
	NotificationOrderStatus NotificationType = "order_status"

	// NotificationMessage announces a new chat message.
	NotificationMessage NotificationType = "message"

	// NotificationReview announces a new review.
	NotificationReview NotificationType = "review"

	// NotificationPayment announces a payment event.
	NotificationPayment NotificationType = "payment"
)

// Notification is one fire-and-forget event for a counterparty. Order fields
// are set for order_status events and left zero otherwise; the party fields
// let the dispatcher derive a change event without re-reading the order.
type Notification struct {
	Type         NotificationType
	TargetUserID kernel.UUID
	OrderID      *kernel.UUID
	RequesterID  kernel.UUID
	ProviderID   kernel.UUID
	OldStatus    string
	NewStatus    string
}

// NotificationDispatcher delivers transition events to counterparties.
// Delivery is fire-and-forget: handlers dispatch after their transaction
// commits, and a delivery failure never rolls back the transition that
// triggered it.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

// ChangeEvent is one observed mutation of an order, pushed to subscribers.
// Receivers must re-run deadline evaluation on every event rather than
// trusting a previously computed expiry.
type ChangeEvent struct {
	OrderID     kernel.UUID
	RequesterID kernel.UUID
	ProviderID  kernel.UUID
	OldStatus   string
	NewStatus   string
	OccurredAt  time.Time
}

// ChangeFilter restricts a subscription. Nil fields match everything; a
// non-nil OrderID matches that order, a non-nil UserID matches events where
// the user is either party.
type ChangeFilter struct {
	OrderID *kernel.UUID
	UserID  *kernel.UUID
}

// ChangeStream is the push-based subscription interface over order mutations.
// Subscribe returns a receive channel and an unsubscribe function; the channel
// is closed on unsubscribe.
type ChangeStream interface {
	Subscribe(filter ChangeFilter) (<-chan ChangeEvent, func())
}
