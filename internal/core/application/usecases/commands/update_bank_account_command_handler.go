package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// UpdateBankAccountCommandHandler edits a payout destination. Editing resets
// verification (the domain handles that); promoting to primary clears the
// owner's other primaries within the same transaction.
type UpdateBankAccountCommandHandler struct {
	uowFactory BankAccountUoWFactory
}

// NewUpdateBankAccountCommandHandler creates a handler for account edits.
func NewUpdateBankAccountCommandHandler(uowFactory BankAccountUoWFactory) UpdateBankAccountCommandHandler {
	return UpdateBankAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit. The actor must own the account.
func (h *UpdateBankAccountCommandHandler) Handle(ctx context.Context, cmd UpdateBankAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BankAccountRepository()
	account, err := repo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if !account.IsOwnedBy(cmd.ActorID()) {
		return errs.NewAuthorizationError("user", "edit another user's bank account")
	}

	if err = account.Update(cmd.BankName(), cmd.AccountNumber(), cmd.HolderName()); err != nil {
		return err
	}

	if cmd.IsPrimary() && !account.IsPrimary() {
		if err = repo.ClearPrimary(ctx, account.OwnerID()); err != nil {
			return err
		}
		account.MakePrimary()
	}

	if err = repo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
