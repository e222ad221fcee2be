package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/refund"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// SubmitRefundCommandHandler stores a refund request produced by the wizard.
// This is the single side-effecting act of the refund workflow: the order is
// re-read inside the transaction and eligibility re-checked against current
// state, so a wizard left open across a state change cannot submit stale data.
//
// The insert is keyed on the operation token; a duplicate submission surfaces
// as ports.ErrDuplicateOperation and leaves exactly one stored request.
type SubmitRefundCommandHandler struct {
	uowFactory RefundUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewSubmitRefundCommandHandler creates a handler for refund submissions.
func NewSubmitRefundCommandHandler(
	uowFactory RefundUoWFactory,
	dispatcher ports.NotificationDispatcher,
) SubmitRefundCommandHandler {
	return SubmitRefundCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the refund submission. The actor must be the order's
// requester and must own the selected payout destination.
func (h *SubmitRefundCommandHandler) Handle(ctx context.Context, cmd SubmitRefundCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.RequesterID().IsEqual(cmd.ActorID()) {
		return errs.NewAuthorizationError("user", "request a refund for another user's order")
	}

	if err = refund.EnsureRefundable(aggregate); err != nil {
		return err
	}

	account, err := uow.BankAccountRepository().Get(ctx, cmd.BankAccountID())
	if err != nil {
		return err
	}

	if !account.IsOwnedBy(cmd.ActorID()) {
		return errs.NewAuthorizationError("user", "select another user's bank account")
	}

	request, err := refund.NewRefundRequest(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.ActorID(),
		account.ID(),
		cmd.Reason(),
		aggregate.Snapshot().Price(),
		cmd.OperationToken(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.RefundRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.dispatcher != nil {
		orderID := aggregate.ID()
		_ = h.dispatcher.Dispatch(ctx, ports.Notification{
			Type:         ports.NotificationPayment,
			TargetUserID: aggregate.ProviderID(),
			OrderID:      &orderID,
		})
	}

	return nil
}
