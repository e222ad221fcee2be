package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ConfirmPaymentCommandHandler settles an order's payment: pending -> paid.
// Triggered by the payment gateway callback, so the transition runs under the
// system role rather than a user identity.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the payment confirmation.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmPayment(order.RoleSystem); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.dispatcher != nil {
		orderID := aggregate.ID()
		for _, n := range []ports.Notification{
			{TargetUserID: aggregate.RequesterID()},
			{TargetUserID: aggregate.ProviderID()},
		} {
			n.Type = ports.NotificationPayment
			n.OrderID = &orderID
			_ = h.dispatcher.Dispatch(ctx, n)
		}
	}

	return nil
}
