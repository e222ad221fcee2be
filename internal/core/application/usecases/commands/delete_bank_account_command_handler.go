package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// DeleteBankAccountCommandHandler removes a payout destination.
type DeleteBankAccountCommandHandler struct {
	uowFactory BankAccountUoWFactory
}

// NewDeleteBankAccountCommandHandler creates a handler for account deletion.
func NewDeleteBankAccountCommandHandler(uowFactory BankAccountUoWFactory) DeleteBankAccountCommandHandler {
	return DeleteBankAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion. The actor must own the account.
func (h *DeleteBankAccountCommandHandler) Handle(ctx context.Context, cmd DeleteBankAccountCommand) error {
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
		return errs.NewAuthorizationError("user", "delete another user's bank account")
	}

	if err = repo.Delete(ctx, account.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
