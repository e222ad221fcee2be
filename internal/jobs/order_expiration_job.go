package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpirationJob periodically persists lazily observed deadline expiry:
// pending orders whose confirmation deadline lapsed are cancelled in storage.
// Reads already report such orders as cancelled through the effective status,
// so the schedule bounds staleness of the stored rows, not of what users see.
type OrderExpirationJob struct {
	handler  commands.ExpireOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderExpirationJob creates the expiration sweep job with the given cron
// schedule (standard five-field expression, e.g. "* * * * *" for every minute).
func NewOrderExpirationJob(
	handler commands.ExpireOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderExpirationJob {
	return &OrderExpirationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "order_expiration_job"),
	}
}

// Start begins the expiration sweep on its schedule.
func (j *OrderExpirationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewExpireOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is the normal case, not a failure.
			if !errors.Is(err, commands.ErrNoExpiredOrders) {
				j.logger.ErrorContext(ctx, "Order expiration job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiration job started", "schedule", j.schedule)
	return nil
}

// Stop stops the expiration sweep.
func (j *OrderExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiration job stopped")
}
