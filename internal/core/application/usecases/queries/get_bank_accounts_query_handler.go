package queries

import (
	"context"

	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBankAccountsQueryHandler retrieves a user's payout destinations.
// Account numbers are masked before they leave the handler.
type GetBankAccountsQueryHandler struct {
	db *gorm.DB
}

// NewGetBankAccountsQueryHandler creates a handler for bank account queries.
func NewGetBankAccountsQueryHandler(db *gorm.DB) GetBankAccountsQueryHandler {
	return GetBankAccountsQueryHandler{db: db}
}

// Handle executes the query. Primary accounts sort first, then newest first.
func (h GetBankAccountsQueryHandler) Handle(
	ctx context.Context,
	query GetBankAccountsQuery,
) ([]GetBankAccountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts := make([]GetBankAccountsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			bank_name,
			account_number,
			holder_name,
			is_primary,
			is_verified,
			created_at
		FROM bank_accounts
		WHERE owner_id = ?
		ORDER BY is_primary DESC, created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var account GetBankAccountsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&account.BankName,
			&account.AccountNumber,
			&account.HolderName,
			&account.IsPrimary,
			&account.IsVerified,
			&account.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if account.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		account.AccountNumber = bankaccount.MaskAccountNumber(account.AccountNumber)
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
