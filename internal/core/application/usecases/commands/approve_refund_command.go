package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrApproveRefundCommandIsNotConstructed = errors.New(
	"ApproveRefundCommand must be created via NewApproveRefundCommand constructor",
)

// ApproveRefundCommand represents an administrator granting a refund request.
// Approval resolves the request and refunds the order in one transaction.
type ApproveRefundCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRefundCommand creates a command to approve a refund request.
func NewApproveRefundCommand(requestID, actorID kernel.UUID) (ApproveRefundCommand, error) {
	cmd := ApproveRefundCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActorID(actorID),
	); err != nil {
		return ApproveRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRefundCommand) Validate() error {
	return c.guard.Validate(ErrApproveRefundCommandIsNotConstructed)
}

// RequestID returns the refund request to approve.
func (c ApproveRefundCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ActorID returns the acting administrator's identifier.
func (c ApproveRefundCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ApproveRefundCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *ApproveRefundCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
