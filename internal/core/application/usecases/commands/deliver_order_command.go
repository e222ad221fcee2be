package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents the provider submitting work for acceptance,
// either the initial delivery of an active order or a re-delivery after revision.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command for the provider to deliver an order.
func NewDeliverOrderCommand(orderID, actorID kernel.UUID) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return DeliverOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting provider's identifier.
func (c DeliverOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}
