package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its revision history and the
// deadline evaluation computed at read time.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db, thresholds)
//	order, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RevisionResponse is one revision request in an order's history.
type RevisionResponse struct {
	ID        kernel.UUID
	Message   string
	CreatedAt time.Time
}

// GetOrderQueryResponse is the read model of one order. Status is the
// effective status: a stored pending order whose confirmation deadline has
// lapsed reads as cancelled even before the expiration sweep persists it.
// Deadline carries the urgency classification of whichever deadline currently
// governs the order.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	RequesterID   kernel.UUID
	ProviderID    kernel.UUID
	Status        string
	PaymentStatus string

	ConfirmationDeadline *time.Time
	DeliveryDeadline     *time.Time
	Deadline             kernel.DeadlineStatus

	RevisionCount int
	RevisionLimit int
	Revisions     []RevisionResponse

	PriceAmount   int64
	PriceCurrency string

	CreatedAt   time.Time
	CompletedAt *time.Time
}
