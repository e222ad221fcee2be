package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"
)

// CreateBankAccountCommandHandler registers a new payout destination. When the
// account is created as primary, the owner's previous primary is cleared in
// the same transaction so at most one primary survives the commit.
type CreateBankAccountCommandHandler struct {
	uowFactory BankAccountUoWFactory
}

// NewCreateBankAccountCommandHandler creates a handler for account registration.
func NewCreateBankAccountCommandHandler(uowFactory BankAccountUoWFactory) CreateBankAccountCommandHandler {
	return CreateBankAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration.
func (h *CreateBankAccountCommandHandler) Handle(ctx context.Context, cmd CreateBankAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	account, err := bankaccount.NewBankAccount(
		kernel.NewUUID(),
		cmd.OwnerID(),
		cmd.BankName(),
		cmd.AccountNumber(),
		cmd.HolderName(),
		cmd.IsPrimary(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BankAccountRepository()
	if cmd.IsPrimary() {
		if err = repo.ClearPrimary(ctx, cmd.OwnerID()); err != nil {
			return err
		}
	}

	if err = repo.Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
