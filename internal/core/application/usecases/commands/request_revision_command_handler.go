package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// RequestRevisionCommandHandler applies the requester's revision demand:
// delivered -> in_revision, bounded by the package snapshot's revision limit.
//
// The revision-count increment, the status change and the RevisionRequest
// record are committed in one transaction: partial application of any of the
// three would violate the revision invariant, so they succeed together or
// not at all.
type RequestRevisionCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewRequestRevisionCommandHandler creates a handler for revision requests.
func NewRequestRevisionCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) RequestRevisionCommandHandler {
	return RequestRevisionCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the revision command. The actor must be the order's requester.
func (h *RequestRevisionCommandHandler) Handle(ctx context.Context, cmd RequestRevisionCommand) error {
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

	if !aggregate.RequesterID().IsEqual(cmd.ActorID()) {
		return errs.NewAuthorizationError("user", "request a revision of another user's order")
	}

	oldStatus := aggregate.Status()
	revision, err := aggregate.RequestRevision(order.RoleRequester, cmd.Message(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = repo.AddRevision(ctx, revision); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatusChange(ctx, h.dispatcher, aggregate, oldStatus, aggregate.Status(), order.RoleRequester)
	return nil
}
