package order

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrRevisionLimitReached is wrapped into the GuardError returned when an
// order has exhausted its package snapshot's revision limit.
var ErrRevisionLimitReached = errors.New("revision limit reached")

// RevisionRequest is a child entity of an Order: one bounded, requester-initiated
// demand for rework before final acceptance. The total count of revision
// requests never exceeds the order's package snapshot revision limit; the
// bound is enforced by Order.RequestRevision, which is the only way to create one.
type RevisionRequest struct {
	id        kernel.UUID
	orderID   kernel.UUID
	message   string
	createdAt time.Time
}

// newRevisionRequest validates the message and creates a revision request.
// The message must be non-empty after trimming.
func newRevisionRequest(orderID kernel.UUID, message string, createdAt time.Time) (*RevisionRequest, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, errs.NewValueIsRequiredError("revision message")
	}

	return &RevisionRequest{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		message:   message,
		createdAt: createdAt,
	}, nil
}

// RestoreRevisionRequest reconstructs a revision request from persistence.
func RestoreRevisionRequest(id, orderID kernel.UUID, message string, createdAt time.Time) (*RevisionRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(message) == "" {
		return nil, errs.NewValueIsRequiredError("revision message")
	}

	return &RevisionRequest{
		id:        id,
		orderID:   orderID,
		message:   message,
		createdAt: createdAt,
	}, nil
}

// ID returns the revision request's unique identifier.
func (r *RevisionRequest) ID() kernel.UUID {
	return r.id
}

// OrderID returns the owning order's identifier.
func (r *RevisionRequest) OrderID() kernel.UUID {
	return r.orderID
}

// Message returns the requester-supplied rework description.
func (r *RevisionRequest) Message() string {
	return r.message
}

// CreatedAt returns when the revision was requested.
func (r *RevisionRequest) CreatedAt() time.Time {
	return r.createdAt
}
