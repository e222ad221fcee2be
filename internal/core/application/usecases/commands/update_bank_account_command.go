package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateBankAccountCommandIsNotConstructed = errors.New(
	"UpdateBankAccountCommand must be created via NewUpdateBankAccountCommand constructor",
)

// UpdateBankAccountCommand edits a payout destination's details. Only the
// owner may edit; the handler loads the account and verifies ownership.
type UpdateBankAccountCommand struct { //nolint:recvcheck //using for validation
	accountID     kernel.UUID
	actorID       kernel.UUID
	bankName      string
	accountNumber string
	holderName    string
	isPrimary     bool

	guard guard.ConstructorGuard
}

// NewUpdateBankAccountCommand creates a command to edit a bank account.
func NewUpdateBankAccountCommand(
	accountID, actorID kernel.UUID,
	bankName, accountNumber, holderName string,
	isPrimary bool,
) (UpdateBankAccountCommand, error) {
	cmd := UpdateBankAccountCommand{
		isPrimary: isPrimary,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setActorID(actorID),
		cmd.setBankName(bankName),
		cmd.setAccountNumber(accountNumber),
		cmd.setHolderName(holderName),
	); err != nil {
		return UpdateBankAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBankAccountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBankAccountCommandIsNotConstructed)
}

// AccountID returns the account to edit.
func (c UpdateBankAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// ActorID returns the acting user's identifier.
func (c UpdateBankAccountCommand) ActorID() kernel.UUID {
	return c.actorID
}

// BankName returns the new bank choice.
func (c UpdateBankAccountCommand) BankName() string {
	return c.bankName
}

// AccountNumber returns the new raw account number.
func (c UpdateBankAccountCommand) AccountNumber() string {
	return c.accountNumber
}

// HolderName returns the new account holder's name.
func (c UpdateBankAccountCommand) HolderName() string {
	return c.holderName
}

// IsPrimary reports whether the account should become the default destination.
func (c UpdateBankAccountCommand) IsPrimary() bool {
	return c.isPrimary
}

func (c *UpdateBankAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *UpdateBankAccountCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateBankAccountCommand) setBankName(bankName string) error {
	if bankName == "" {
		return errs.NewValueIsRequiredError("bank name")
	}
	if !bankaccount.IsSupportedBank(bankName) {
		return errs.NewValueIsInvalidError("bank name: " + bankName)
	}
	c.bankName = bankName
	return nil
}

func (c *UpdateBankAccountCommand) setAccountNumber(accountNumber string) error {
	if accountNumber == "" {
		return errs.NewValueIsRequiredError("account number")
	}
	c.accountNumber = accountNumber
	return nil
}

func (c *UpdateBankAccountCommand) setHolderName(holderName string) error {
	if strings.TrimSpace(holderName) == "" {
		return errs.NewValueIsRequiredError("account holder name")
	}
	c.holderName = holderName
	return nil
}
