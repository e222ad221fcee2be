package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ApproveRefundCommandHandler resolves a submitted refund request in the
// requester's favor. The request resolution and the order's transition to
// cancelled/refunded commit in one transaction: an approved request with an
// unrefunded order (or the converse) must never be observable.
type ApproveRefundCommandHandler struct {
	uowFactory RefundUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewApproveRefundCommandHandler creates a handler for refund approvals.
func NewApproveRefundCommandHandler(
	uowFactory RefundUoWFactory,
	dispatcher ports.NotificationDispatcher,
) ApproveRefundCommandHandler {
	return ApproveRefundCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the approval. The caller is responsible for routing only
// administrators here; the domain enforces the administrator role on the
// order transition as well.
func (h *ApproveRefundCommandHandler) Handle(ctx context.Context, cmd ApproveRefundCommand) error {
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

	if err = request.Approve(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, request.OrderID())
	if err != nil {
		return err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.ApproveRefund(order.RoleAdministrator); err != nil {
		return err
	}

	if err = refundRepo.Update(ctx, request); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatusChange(ctx, h.dispatcher, aggregate, oldStatus, aggregate.Status(), order.RoleAdministrator)
	return nil
}
