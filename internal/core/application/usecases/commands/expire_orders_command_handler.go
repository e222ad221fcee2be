package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ErrNoExpiredOrders signals the sweep found nothing to cancel. Callers treat
// it as a quiet no-op rather than a failure.
var ErrNoExpiredOrders = errors.New("no expired orders found")

// ExpireOrdersCommandHandler makes lazy deadline expiry durable: every pending
// order whose confirmation deadline has lapsed is cancelled in storage.
//
// Each order is processed in its own transaction so one bad row cannot stall
// the whole sweep. A ConflictError on an individual order means a user action
// resolved it between the batch read and the write; the sweep skips it, since
// the other writer already took the order out of pending.
type ExpireOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewExpireOrdersCommandHandler creates a handler for the expiration sweep.
func NewExpireOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) ExpireOrdersCommandHandler {
	return ExpireOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the expiration sweep. Returns ErrNoExpiredOrders when
// nothing was eligible.
func (h *ExpireOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	expired, err := h.collectExpired(ctx, now)
	if err != nil {
		return err
	}

	if len(expired) == 0 {
		return ErrNoExpiredOrders
	}

	for _, aggregate := range expired {
		if err = h.expireOrder(ctx, aggregate, now); err != nil {
			var conflictErr *errs.ConflictError
			if errors.As(err, &conflictErr) {
				continue
			}
			return err
		}

		notifyStatusChange(ctx, h.dispatcher, aggregate, order.Pending, aggregate.Status(), order.RoleSystem)
	}

	return nil
}

func (h *ExpireOrdersCommandHandler) collectExpired(ctx context.Context, now time.Time) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expired, err := uow.OrderRepository().GetExpiredPending(ctx, now)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return expired, nil
}

func (h *ExpireOrdersCommandHandler) expireOrder(ctx context.Context, aggregate *order.Order, now time.Time) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := aggregate.ExpireConfirmation(order.RoleSystem, now); err != nil {
		return err
	}

	repo := uow.OrderRepository()
	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
