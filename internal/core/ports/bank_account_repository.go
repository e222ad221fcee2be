package ports

import (
	"context"

	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"
)

// BankAccountRepository defines the persistence contract for payout destinations.
// Accounts are owned exclusively by their creating user; ownership checks are
// performed by the use cases, which load the account and compare owners before
// mutating.
type BankAccountRepository interface {
	// Add persists a new bank account.
	Add(ctx context.Context, aggregate *bankaccount.BankAccount) error

	// Update persists changes to an existing bank account.
	Update(ctx context.Context, aggregate *bankaccount.BankAccount) error

	// Delete removes a bank account permanently. Deletion is hard.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a bank account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bankaccount.BankAccount, error)

	// GetAllByOwner retrieves all accounts owned by the given user.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*bankaccount.BankAccount, error)

	// ClearPrimary clears the primary flag on every account of the owner.
	// Called in the same transaction that sets the flag on one account, so the
	// registry never commits two simultaneous primaries.
	ClearPrimary(ctx context.Context, ownerID kernel.UUID) error
}
