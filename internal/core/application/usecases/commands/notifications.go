package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// notifyStatusChange dispatches one order_status event per counterparty after
// a committed transition. Provider-initiated transitions notify the requester
// and vice versa; system- and administrator-initiated transitions notify both
// parties. Dispatch is fire-and-forget: errors are swallowed here because a
// delivery failure must never roll back or fail the transition that
// triggered it (the dispatcher logs its own failures).
func notifyStatusChange(
	ctx context.Context,
	dispatcher ports.NotificationDispatcher,
	o *order.Order,
	oldStatus, newStatus order.Status,
	actor order.Role,
) {
	if dispatcher == nil {
		return
	}

	orderID := o.ID()
	targets := make([]ports.Notification, 0, 2)

	notification := func(target ports.Notification) ports.Notification {
		target.Type = ports.NotificationOrderStatus
		target.OrderID = &orderID
		target.RequesterID = o.RequesterID()
		target.ProviderID = o.ProviderID()
		target.OldStatus = oldStatus.String()
		target.NewStatus = newStatus.String()
		return target
	}

	switch actor {
	case order.RoleProvider:
		targets = append(targets, notification(ports.Notification{TargetUserID: o.RequesterID()}))
	case order.RoleRequester:
		targets = append(targets, notification(ports.Notification{TargetUserID: o.ProviderID()}))
	default:
		targets = append(targets,
			notification(ports.Notification{TargetUserID: o.RequesterID()}),
			notification(ports.Notification{TargetUserID: o.ProviderID()}),
		)
	}

	for _, n := range targets {
		_ = dispatcher.Dispatch(ctx, n)
	}
}
