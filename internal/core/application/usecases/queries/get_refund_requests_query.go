package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetRefundRequestsQueryIsNotConstructed = errors.New(
		"GetRefundRequestsQuery must be created via NewGetRefundRequestsQuery constructor",
	)
)

// GetRefundRequestsQuery retrieves the refund requests submitted for an order,
// newest first, with the payout destination masked.
type GetRefundRequestsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRefundRequestsQuery creates a query for an order's refund requests.
func NewGetRefundRequestsQuery(orderID kernel.UUID) (GetRefundRequestsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetRefundRequestsQuery{}, err
	}

	return GetRefundRequestsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRefundRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetRefundRequestsQueryIsNotConstructed)
}

// OrderID returns the order whose refund requests are requested.
func (q GetRefundRequestsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetRefundRequestsQueryResponse is one refund request in an order's history.
type GetRefundRequestsQueryResponse struct {
	ID                kernel.UUID
	Status            string
	ReasonCategory    string
	ReasonDetail      string
	BankName          string
	MaskedDestination string
	Amount            int64
	Currency          string
	CreatedAt         time.Time
}
