// Package bankaccountrepo provides data transfer objects and mapping functions
// for payout-destination persistence.
package bankaccountrepo

import (
	"time"

	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BankAccountDTO represents the database structure for persisting bank accounts.
// The account number is stored raw; masking happens on the read side only.
type BankAccountDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	BankName      string
	AccountNumber string
	HolderName    string
	IsPrimary     bool
	IsVerified    bool
	CreatedAt     time.Time
}

// TableName specifies the database table name for bank account entities.
func (BankAccountDTO) TableName() string {
	return "bank_accounts"
}

// fromDomain converts a bank account aggregate to its database representation.
func fromDomain(account *bankaccount.BankAccount) BankAccountDTO {
	return BankAccountDTO{
		ID:            account.ID().Bytes(),
		OwnerID:       account.OwnerID().Bytes(),
		BankName:      account.BankName(),
		AccountNumber: account.AccountNumber(),
		HolderName:    account.HolderName(),
		IsPrimary:     account.IsPrimary(),
		IsVerified:    account.IsVerified(),
		CreatedAt:     account.CreatedAt(),
	}
}

// toDomain converts a database DTO to a bank account aggregate using RestoreBankAccount.
func toDomain(dto BankAccountDTO) (*bankaccount.BankAccount, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return bankaccount.RestoreBankAccount(
		id, ownerID,
		dto.BankName, dto.AccountNumber, dto.HolderName,
		dto.IsPrimary, dto.IsVerified,
		dto.CreatedAt,
	)
}
