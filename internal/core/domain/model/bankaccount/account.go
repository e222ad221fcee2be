package bankaccount

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrBankAccountIsNotConstructed is returned when a BankAccount instance was
// not created through the NewBankAccount or RestoreBankAccount factory methods.
var ErrBankAccountIsNotConstructed = errors.New(
	"BankAccount must be created via NewBankAccount or RestoreBankAccount constructor")

// BankAccount is a payout destination owned by exactly one user. It is the
// aggregate root of the payout-destination registry.
//
// BankAccount follows these invariants:
//   - The bank name is from the fixed supported-bank list
//   - The account number contains digits only
//   - The holder name is non-empty
//   - Ownership never transfers; selecting an account for a refund is a
//     read-only reference
//
// The at-most-one-primary-per-owner invariant spans aggregates and is
// enforced by the repository inside the same transaction that sets the flag.
type BankAccount struct {
	// id is the unique identifier for the account
	id kernel.UUID

	// ownerID is the only user who may read, select or mutate this account
	ownerID kernel.UUID

	bankName      string
	accountNumber string
	holderName    string

	// isPrimary marks the owner's default payout destination
	isPrimary bool

	// isVerified is set by an out-of-band verification step
	isVerified bool

	createdAt time.Time

	isConstructed bool
}

// NewBankAccount creates a validated payout destination for a user.
//
// Validation rules:
//   - bankName must be in the fixed supported-bank list
//   - accountNumber must be non-empty and digits only
//   - holderName must be non-empty after trimming
func NewBankAccount(
	id, ownerID kernel.UUID,
	bankName, accountNumber, holderName string,
	isPrimary bool,
	createdAt time.Time,
) (*BankAccount, error) {
	a := &BankAccount{
		isPrimary:     isPrimary,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOwnerID(ownerID),
		a.setBankName(bankName),
		a.setAccountNumber(accountNumber),
		a.setHolderName(holderName),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreBankAccount reconstructs a BankAccount from persistence.
func RestoreBankAccount(
	id, ownerID kernel.UUID,
	bankName, accountNumber, holderName string,
	isPrimary, isVerified bool,
	createdAt time.Time,
) (*BankAccount, error) {
	a, err := NewBankAccount(id, ownerID, bankName, accountNumber, holderName, isPrimary, createdAt)
	if err != nil {
		return nil, err
	}
	a.isVerified = isVerified
	return a, nil
}

// Validate ensures the BankAccount instance was properly constructed.
func (a *BankAccount) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrBankAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *BankAccount) ID() kernel.UUID {
	return a.id
}

// OwnerID returns the owning user's identifier.
func (a *BankAccount) OwnerID() kernel.UUID {
	return a.ownerID
}

// BankName returns the bank the account belongs to.
func (a *BankAccount) BankName() string {
	return a.bankName
}

// AccountNumber returns the raw, unmasked account number.
// Use MaskedNumber wherever the number is displayed.
func (a *BankAccount) AccountNumber() string {
	return a.accountNumber
}

// MaskedNumber returns the account number with all but the last four digits masked.
func (a *BankAccount) MaskedNumber() string {
	return MaskAccountNumber(a.accountNumber)
}

// HolderName returns the account holder's name.
func (a *BankAccount) HolderName() string {
	return a.holderName
}

// IsPrimary reports whether the account is the owner's default payout destination.
func (a *BankAccount) IsPrimary() bool {
	return a.isPrimary
}

// IsVerified reports whether the account passed out-of-band verification.
func (a *BankAccount) IsVerified() bool {
	return a.isVerified
}

// CreatedAt returns when the account was registered.
func (a *BankAccount) CreatedAt() time.Time {
	return a.createdAt
}

// IsOwnedBy reports whether the given user owns this account.
func (a *BankAccount) IsOwnedBy(userID kernel.UUID) bool {
	return a.ownerID.IsEqual(userID)
}

// Update replaces the account's editable fields after validating them.
// Ownership and creation time never change; verification resets, since the
// verified state applied to the previous details.
func (a *BankAccount) Update(bankName, accountNumber, holderName string) error {
	if err := errors.Join(
		a.setBankName(bankName),
		a.setAccountNumber(accountNumber),
		a.setHolderName(holderName),
	); err != nil {
		return err
	}
	a.isVerified = false
	return nil
}

// MakePrimary marks the account as the owner's default payout destination.
// The repository clears the flag on the owner's other accounts in the same
// transaction to keep at most one primary per owner.
func (a *BankAccount) MakePrimary() {
	a.isPrimary = true
}

// ClearPrimary removes the default-destination mark.
func (a *BankAccount) ClearPrimary() {
	a.isPrimary = false
}

// MarkVerified records a successful out-of-band verification.
func (a *BankAccount) MarkVerified() {
	a.isVerified = true
}

func (a *BankAccount) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *BankAccount) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	a.ownerID = ownerID
	return nil
}

func (a *BankAccount) setBankName(bankName string) error {
	if bankName == "" {
		return errs.NewValueIsRequiredError("bank name")
	}
	if !IsSupportedBank(bankName) {
		return errs.NewValueIsInvalidError("bank name: " + bankName)
	}
	a.bankName = bankName
	return nil
}

func (a *BankAccount) setAccountNumber(accountNumber string) error {
	if accountNumber == "" {
		return errs.NewValueIsRequiredError("account number")
	}
	for _, r := range accountNumber {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidError("account number must contain digits only")
		}
	}
	a.accountNumber = accountNumber
	return nil
}

func (a *BankAccount) setHolderName(holderName string) error {
	if strings.TrimSpace(holderName) == "" {
		return errs.NewValueIsRequiredError("account holder name")
	}
	a.holderName = strings.TrimSpace(holderName)
	return nil
}
