// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers bypass the
// aggregates and read with raw SQL, re-deriving presentation state (effective
// status, deadline urgency) at read time instead of trusting stored values.
package queries

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// effectiveStatus maps a stored status to the status a reader should see.
// A pending order past its confirmation deadline reads as cancelled; storage
// catches up when the expiration sweep runs.
func effectiveStatus(stored string, confirmationDeadline *time.Time, now time.Time) string {
	if stored != order.Pending.String() {
		return stored
	}
	if confirmationDeadline != nil && !confirmationDeadline.After(now) {
		return order.Cancelled.String()
	}
	return stored
}

// governingDeadline picks the deadline that currently constrains the order:
// the confirmation deadline before acceptance, the delivery deadline while
// work is underway, none once the order is terminal or delivered.
func governingDeadline(status string, confirmation, delivery *time.Time) *time.Time {
	switch status {
	case order.Pending.String(), order.AwaitingConfirmation.String():
		return confirmation
	case order.Active.String(), order.InRevision.String():
		return delivery
	default:
		return nil
	}
}

// evaluateDeadline computes the read-time deadline classification. Urgency is
// never stored: every read recomputes it so a row written hours ago still
// reports the current remaining time.
func evaluateDeadline(
	status string,
	confirmation, delivery *time.Time,
	now time.Time,
	thresholds kernel.DeadlineThresholds,
) kernel.DeadlineStatus {
	return kernel.EvaluateDeadline(
		governingDeadline(status, confirmation, delivery),
		now,
		thresholds,
	)
}
