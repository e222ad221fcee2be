package bankaccountrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBankAccountRepository implements BankAccountRepository using GORM.
type GormBankAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBankAccountRepository creates a new GORM bank account repository.
func NewGormBankAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormBankAccountRepository {
	return &GormBankAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bank account to the database.
func (r *GormBankAccountRepository) Add(ctx context.Context, aggregate *bankaccount.BankAccount) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bank account. All columns are written, including
// flags cleared back to false.
func (r *GormBankAccountRepository) Update(ctx context.Context, aggregate *bankaccount.BankAccount) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BankAccountDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bank account", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a bank account permanently.
func (r *GormBankAccountRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BankAccountDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bank account", id.String())
	}

	return nil
}

// Get retrieves a bank account by ID.
func (r *GormBankAccountRepository) Get(ctx context.Context, id kernel.UUID) (*bankaccount.BankAccount, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BankAccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bank account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOwner retrieves all accounts owned by the given user, primary first.
func (r *GormBankAccountRepository) GetAllByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*bankaccount.BankAccount, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BankAccountDTO
	if err := r.db.WithContext(ctx).
		Order("is_primary DESC, created_at DESC").
		Find(&dtos, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		return nil, err
	}

	accounts := make([]*bankaccount.BankAccount, 0, len(dtos))
	for _, dto := range dtos {
		account, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// ClearPrimary clears the primary flag on every account of the owner. Runs in
// the same transaction as the write that sets the flag on one account, so the
// registry never commits two simultaneous primaries.
func (r *GormBankAccountRepository) ClearPrimary(ctx context.Context, ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&BankAccountDTO{}).
		Where("owner_id = ? AND is_primary", ownerID.Bytes()).
		Update("is_primary", false).Error
}
