package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRejectRefundCommandIsNotConstructed = errors.New(
	"RejectRefundCommand must be created via NewRejectRefundCommand constructor",
)

// RejectRefundCommand represents an administrator declining a refund request.
// Rejection resolves the request only; the order keeps its current state.
type RejectRefundCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectRefundCommand creates a command to reject a refund request.
func NewRejectRefundCommand(requestID, actorID kernel.UUID) (RejectRefundCommand, error) {
	cmd := RejectRefundCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActorID(actorID),
	); err != nil {
		return RejectRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRefundCommand) Validate() error {
	return c.guard.Validate(ErrRejectRefundCommandIsNotConstructed)
}

// RequestID returns the refund request to reject.
func (c RejectRefundCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ActorID returns the acting administrator's identifier.
func (c RejectRefundCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RejectRefundCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *RejectRefundCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
