package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetBankAccountsQueryIsNotConstructed = errors.New(
		"GetBankAccountsQuery must be created via NewGetBankAccountsQuery constructor",
	)
)

// GetBankAccountsQuery retrieves a user's payout destinations. The read model
// carries the account number masked; the raw number never leaves the write side.
type GetBankAccountsQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBankAccountsQuery creates a query for a user's bank accounts.
func NewGetBankAccountsQuery(ownerID kernel.UUID) (GetBankAccountsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetBankAccountsQuery{}, err
	}

	return GetBankAccountsQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBankAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetBankAccountsQueryIsNotConstructed)
}

// OwnerID returns the owning user's identifier.
func (q GetBankAccountsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetBankAccountsQueryResponse is one payout destination in the owner's list.
type GetBankAccountsQueryResponse struct {
	ID            kernel.UUID
	BankName      string
	AccountNumber string
	HolderName    string
	IsPrimary     bool
	IsVerified    bool
	CreatedAt     time.Time
}
