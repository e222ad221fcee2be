package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/refund"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSubmitRefundCommandIsNotConstructed = errors.New(
	"SubmitRefundCommand must be created via NewSubmitRefundCommand constructor",
)

// SubmitRefundCommand carries a completed refund-wizard submission. The reason
// is validated at construction; the amount is never part of the command - the
// handler copies it from the order's paid amount server-side.
//
// The operation token makes the submission idempotent: resubmitting the same
// token yields the already-stored request, never a second one.
type SubmitRefundCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actorID        kernel.UUID
	reason         refund.Reason
	bankAccountID  kernel.UUID
	operationToken string

	guard guard.ConstructorGuard
}

// NewSubmitRefundCommand creates a refund submission command.
func NewSubmitRefundCommand(
	orderID, actorID, bankAccountID kernel.UUID,
	reasonCategory, reasonDetail, operationToken string,
) (SubmitRefundCommand, error) {
	cmd := SubmitRefundCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setBankAccountID(bankAccountID),
		cmd.setReason(reasonCategory, reasonDetail),
		cmd.setOperationToken(operationToken),
	); err != nil {
		return SubmitRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRefundCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRefundCommandIsNotConstructed)
}

// OrderID returns the order the refund is requested for.
func (c SubmitRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the requesting user's identifier.
func (c SubmitRefundCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the validated refund reason.
func (c SubmitRefundCommand) Reason() refund.Reason {
	return c.reason
}

// BankAccountID returns the selected payout destination.
func (c SubmitRefundCommand) BankAccountID() kernel.UUID {
	return c.bankAccountID
}

// OperationToken returns the submission's idempotency key.
func (c SubmitRefundCommand) OperationToken() string {
	return c.operationToken
}

func (c *SubmitRefundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitRefundCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *SubmitRefundCommand) setBankAccountID(bankAccountID kernel.UUID) error {
	if err := bankAccountID.Validate(); err != nil {
		return err
	}
	c.bankAccountID = bankAccountID
	return nil
}

func (c *SubmitRefundCommand) setReason(category, detail string) error {
	reason, err := refund.NewReason(category, strings.TrimSpace(detail))
	if err != nil {
		return err
	}
	c.reason = reason
	return nil
}

func (c *SubmitRefundCommand) setOperationToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errs.NewValueIsRequiredError("operation token")
	}
	c.operationToken = token
	return nil
}
