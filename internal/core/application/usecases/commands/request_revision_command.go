package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRequestRevisionCommandIsNotConstructed = errors.New(
	"RequestRevisionCommand must be created via NewRequestRevisionCommand constructor",
)

// RequestRevisionCommand represents the requester demanding rework of a
// delivered order. The message is the rework description shown to the
// provider; it must be non-empty after trimming.
//
// Example:
//
//	cmd, err := NewRequestRevisionCommand(orderID, requesterID, "logo colors are wrong")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRequestRevisionCommandHandler(uowFactory, dispatcher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // GuardError wrapping order.ErrRevisionLimitReached when the
//	    // package's revision limit is exhausted
//	    return err
//	}
type RequestRevisionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	message string

	guard guard.ConstructorGuard
}

// NewRequestRevisionCommand creates a command for the requester to demand rework.
func NewRequestRevisionCommand(orderID, actorID kernel.UUID, message string) (RequestRevisionCommand, error) {
	cmd := RequestRevisionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		cmd.setMessage(message),
	); err != nil {
		return RequestRevisionCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRevisionCommand) Validate() error {
	return c.guard.Validate(ErrRequestRevisionCommandIsNotConstructed)
}

// OrderID returns the order to send to revision.
func (c RequestRevisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting requester's identifier.
func (c RequestRevisionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Message returns the trimmed rework description.
func (c RequestRevisionCommand) Message() string {
	return c.message
}

func (c *RequestRevisionCommand) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("revision message")
	}
	c.message = message
	return nil
}
