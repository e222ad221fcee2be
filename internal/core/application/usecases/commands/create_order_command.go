package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order for a
// purchased package. The package terms arrive as a snapshot: later changes to
// the offering never alter this order.
//
// Example:
//
//	snapshot, _ := order.NewPackageSnapshot(2, 7, price)
//	cmd, err := NewCreateOrderCommand(orderID, requesterID, providerID, snapshot, &deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	requesterID          kernel.UUID
	providerID           kernel.UUID
	snapshot             orderSnapshotSpec
	confirmationDeadline *time.Time

	guard guard.ConstructorGuard
}

// orderSnapshotSpec carries the raw package terms; they are validated when the
// aggregate builds its PackageSnapshot.
type orderSnapshotSpec struct {
	RevisionLimit    int
	DeliveryTimeDays int
	PriceAmount      int64
	PriceCurrency    string
}

// NewCreateOrderCommand creates a command to register a new order.
// Identifier validation happens here; the package terms are validated by the
// domain constructors inside the handler.
func NewCreateOrderCommand(
	orderID, requesterID, providerID kernel.UUID,
	revisionLimit, deliveryTimeDays int,
	priceAmount int64, priceCurrency string,
	confirmationDeadline *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		snapshot: orderSnapshotSpec{
			RevisionLimit:    revisionLimit,
			DeliveryTimeDays: deliveryTimeDays,
			PriceAmount:      priceAmount,
			PriceCurrency:    priceCurrency,
		},
		confirmationDeadline: confirmationDeadline,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParties(requesterID, providerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the purchasing client's identifier.
func (c CreateOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// ProviderID returns the freelancer's identifier.
func (c CreateOrderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// RevisionLimit returns the package's revision limit.
func (c CreateOrderCommand) RevisionLimit() int {
	return c.snapshot.RevisionLimit
}

// DeliveryTimeDays returns the package's promised delivery time.
func (c CreateOrderCommand) DeliveryTimeDays() int {
	return c.snapshot.DeliveryTimeDays
}

// PriceAmount returns the package price in minor currency units.
func (c CreateOrderCommand) PriceAmount() int64 {
	return c.snapshot.PriceAmount
}

// PriceCurrency returns the package price currency code.
func (c CreateOrderCommand) PriceCurrency() string {
	return c.snapshot.PriceCurrency
}

// ConfirmationDeadline returns the optional provider-response deadline.
func (c CreateOrderCommand) ConfirmationDeadline() *time.Time {
	return c.confirmationDeadline
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setParties(requesterID, providerID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	if err := providerID.Validate(); err != nil {
		return err
	}
	c.requesterID = requesterID
	c.providerID = providerID
	return nil
}
