package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is a conditional write: it applies only if the stored version still
// matches the version the aggregate was loaded with, and returns a
// ConflictError otherwise. This is the load-bearing correctness property of
// the engine - two actors racing to resolve the same order (provider accept
// vs. system deadline expiry) are serialized by the version check, never by
// locks, and the loser must re-fetch instead of retrying blindly.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update conditionally persists changes to an existing order aggregate,
	// keyed on the aggregate's last-observed version. Returns a ConflictError
	// if the stored version moved on, and ObjectNotFoundError if no row exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// AddRevision persists a revision request produced by the aggregate.
	// Must be called in the same transaction as the Update that moved the
	// order to in_revision; partial application violates the revision invariant.
	AddRevision(ctx context.Context, revision *order.RevisionRequest) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetRevisions retrieves an order's revision requests, oldest first.
	GetRevisions(ctx context.Context, orderID kernel.UUID) ([]*order.RevisionRequest, error)

	// GetExpiredPending retrieves orders still stored as pending whose
	// confirmation deadline lies at or before the given moment. Used by the
	// expiration job to make lazily observed cancellations durable.
	GetExpiredPending(ctx context.Context, now time.Time) ([]*order.Order, error)
}
