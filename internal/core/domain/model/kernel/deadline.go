package kernel

import "time"

// Urgency classifies how close a deadline is. The state machine's expiry guard
// depends only on DeadlineStatus.Expired; urgency exists for user-facing display.
type Urgency int

const (
	// UrgencyNormal indicates the deadline is comfortably far away, or absent.
	UrgencyNormal Urgency = iota

	// UrgencyWarning indicates the deadline is approaching.
	UrgencyWarning

	// UrgencyCritical indicates the deadline is imminent or already lapsed.
	UrgencyCritical
)

// String returns the wire representation of the urgency tier.
func (u Urgency) String() string {
	switch u {
	case UrgencyWarning:
		return "warning"
	case UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}

// DeadlineThresholds configures the remaining-duration boundaries of the
// urgency tiers. Exact values are a configuration concern, not a correctness
// concern; the three-tier output contract is what callers rely on.
type DeadlineThresholds struct {
	// Critical is the remaining duration under which urgency becomes critical.
	Critical time.Duration

	// Warning is the remaining duration under which urgency becomes warning.
	Warning time.Duration
}

// DefaultDeadlineThresholds returns the thresholds used when none are configured:
// critical under 6 hours remaining, warning under 24 hours.
func DefaultDeadlineThresholds() DeadlineThresholds {
	return DeadlineThresholds{
		Critical: 6 * time.Hour,
		Warning:  24 * time.Hour,
	}
}

// DeadlineStatus is the result of evaluating a deadline against a point in time.
type DeadlineStatus struct {
	// Remaining is the time left until the deadline, clamped to zero once lapsed.
	Remaining time.Duration

	// Urgency is the display tier derived from Remaining.
	Urgency Urgency

	// Expired reports whether the deadline has lapsed. A missing deadline is
	// never expired.
	Expired bool
}

// EvaluateDeadline evaluates a deadline against now. It is total: a nil
// deadline means "no deadline" (not expired, normal urgency) rather than an
// error, and a lapsed deadline yields zero remaining time, never a negative
// duration. Zero-value thresholds fall back to DefaultDeadlineThresholds.
//
// Evaluation must be re-run on every order read and on every received change
// event; the result is a function of "now" and must not be cached.
func EvaluateDeadline(deadline *time.Time, now time.Time, thresholds DeadlineThresholds) DeadlineStatus {
	if deadline == nil {
		return DeadlineStatus{Remaining: 0, Urgency: UrgencyNormal, Expired: false}
	}

	if thresholds.Critical <= 0 && thresholds.Warning <= 0 {
		thresholds = DefaultDeadlineThresholds()
	}

	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return DeadlineStatus{Remaining: 0, Urgency: UrgencyCritical, Expired: true}
	}

	urgency := UrgencyNormal
	switch {
	case remaining <= thresholds.Critical:
		urgency = UrgencyCritical
	case remaining <= thresholds.Warning:
		urgency = UrgencyWarning
	}

	return DeadlineStatus{Remaining: remaining, Urgency: urgency, Expired: false}
}
