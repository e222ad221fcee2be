package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// RejectRefundCommandHandler resolves a submitted refund request against the
// requester. Only the request row changes; the order is left untouched.
type RejectRefundCommandHandler struct {
	uowFactory RefundUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewRejectRefundCommandHandler creates a handler for refund rejections.
func NewRejectRefundCommandHandler(
	uowFactory RefundUoWFactory,
	dispatcher ports.NotificationDispatcher,
) RejectRefundCommandHandler {
	return RejectRefundCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the rejection.
func (h *RejectRefundCommandHandler) Handle(ctx context.Context, cmd RejectRefundCommand) error {
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

	refundRepo := uow.RefundRequestRepository()
	request, err := refundRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = request.Reject(); err != nil {
		return err
	}

	if err = refundRepo.Update(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.dispatcher != nil {
		orderID := request.OrderID()
		_ = h.dispatcher.Dispatch(ctx, ports.Notification{
			Type:         ports.NotificationPayment,
			TargetUserID: request.RequestedBy(),
			OrderID:      &orderID,
		})
	}

	return nil
}
