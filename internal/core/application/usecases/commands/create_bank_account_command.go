package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateBankAccountCommandIsNotConstructed = errors.New(
	"CreateBankAccountCommand must be created via NewCreateBankAccountCommand constructor",
)

// CreateBankAccountCommand registers a payout destination for a user.
// The bank must come from the fixed supported-bank list and the account
// number must be digits only; both are validated here before any transaction
// is opened.
type CreateBankAccountCommand struct { //nolint:recvcheck //using for validation
	ownerID       kernel.UUID
	bankName      string
	accountNumber string
	holderName    string
	isPrimary     bool

	guard guard.ConstructorGuard
}

// NewCreateBankAccountCommand creates a command to register a bank account.
func NewCreateBankAccountCommand(
	ownerID kernel.UUID,
	bankName, accountNumber, holderName string,
	isPrimary bool,
) (CreateBankAccountCommand, error) {
	cmd := CreateBankAccountCommand{
		isPrimary: isPrimary,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setBankName(bankName),
		cmd.setAccountNumber(accountNumber),
		cmd.setHolderName(holderName),
	); err != nil {
		return CreateBankAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBankAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateBankAccountCommandIsNotConstructed)
}

// OwnerID returns the registering user's identifier.
func (c CreateBankAccountCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// BankName returns the chosen bank.
func (c CreateBankAccountCommand) BankName() string {
	return c.bankName
}

// AccountNumber returns the raw account number.
func (c CreateBankAccountCommand) AccountNumber() string {
	return c.accountNumber
}

// HolderName returns the account holder's name.
func (c CreateBankAccountCommand) HolderName() string {
	return c.holderName
}

// IsPrimary reports whether the new account should become the default destination.
func (c CreateBankAccountCommand) IsPrimary() bool {
	return c.isPrimary
}

func (c *CreateBankAccountCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateBankAccountCommand) setBankName(bankName string) error {
	if bankName == "" {
		return errs.NewValueIsRequiredError("bank name")
	}
	if !bankaccount.IsSupportedBank(bankName) {
		return errs.NewValueIsInvalidError("bank name: " + bankName)
	}
	c.bankName = bankName
	return nil
}

func (c *CreateBankAccountCommand) setAccountNumber(accountNumber string) error {
	if accountNumber == "" {
		return errs.NewValueIsRequiredError("account number")
	}
	c.accountNumber = accountNumber
	return nil
}

func (c *CreateBankAccountCommand) setHolderName(holderName string) error {
	if strings.TrimSpace(holderName) == "" {
		return errs.NewValueIsRequiredError("account holder name")
	}
	c.holderName = holderName
	return nil
}
