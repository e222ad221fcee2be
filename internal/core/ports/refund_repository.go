package ports

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/refund"
)

// ErrDuplicateOperation is returned by RefundRequestRepository.Add when a
// refund request with the same operation token already exists. Submitting the
// same token twice therefore yields exactly one stored request.
var ErrDuplicateOperation = errors.New("operation token was already used")

// RefundRequestRepository defines the persistence contract for refund requests.
type RefundRequestRepository interface {
	// Add persists a new refund request. Returns ErrDuplicateOperation if a
	// request with the same operation token already exists.
	Add(ctx context.Context, aggregate *refund.RefundRequest) error

	// Update persists a resolution (approve/reject) of an existing request.
	Update(ctx context.Context, aggregate *refund.RefundRequest) error

	// Get retrieves a refund request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*refund.RefundRequest, error)

	// GetByOrder retrieves all refund requests for an order, newest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*refund.RefundRequest, error)
}
