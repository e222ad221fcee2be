package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteBankAccountCommandIsNotConstructed = errors.New(
	"DeleteBankAccountCommand must be created via NewDeleteBankAccountCommand constructor",
)

// DeleteBankAccountCommand removes a payout destination. Deletion is hard and
// owner-only.
type DeleteBankAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteBankAccountCommand creates a command to delete a bank account.
func NewDeleteBankAccountCommand(accountID, actorID kernel.UUID) (DeleteBankAccountCommand, error) {
	cmd := DeleteBankAccountCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setActorID(actorID),
	); err != nil {
		return DeleteBankAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBankAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBankAccountCommandIsNotConstructed)
}

// AccountID returns the account to delete.
func (c DeleteBankAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// ActorID returns the acting user's identifier.
func (c DeleteBankAccountCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *DeleteBankAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *DeleteBankAccountCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
