package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AcceptOrderCommandHandler applies the provider's acceptance: pending ->
// active, with the confirmation-deadline guard evaluated against "now".
// The write is conditional on the order version read within the same
// transaction, so an acceptance racing the system's deadline expiry can
// never both win: the loser gets a ConflictError and must re-fetch.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the acceptance command. The actor must be the order's
// provider; the domain enforces the status and deadline guards.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if !aggregate.ProviderID().IsEqual(cmd.ActorID()) {
		return errs.NewAuthorizationError("user", "accept an order assigned to another provider")
	}

	oldStatus := aggregate.Status()
	if err = aggregate.Accept(order.RoleProvider, time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatusChange(ctx, h.dispatcher, aggregate, oldStatus, aggregate.Status(), order.RoleProvider)
	return nil
}
