package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrExpireOrdersCommandIsNotConstructed = errors.New(
	"ExpireOrdersCommand must be created via NewExpireOrdersCommand constructor",
)

// ExpireOrdersCommand triggers durable cancellation of pending orders whose
// confirmation deadline has lapsed. Reads already report such orders as
// cancelled through the effective status; this batch operation writes that
// observation back to storage.
//
// Example:
//
//	cmd := NewExpireOrdersCommand()
//	handler := NewExpireOrdersCommandHandler(uowFactory, dispatcher)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil && !errors.Is(err, ErrNoExpiredOrders) {
//	    log.Printf("expiration sweep failed: %v", err)
//	}
type ExpireOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireOrdersCommand creates a parameterless command for the expiration sweep.
func NewExpireOrdersCommand() ExpireOrdersCommand {
	return ExpireOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOrdersCommandIsNotConstructed)
}
