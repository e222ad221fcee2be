package order

import (
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct marketplace workflow.
//
// State transitions:
//
//	Pending ──┬──> Active ──> Delivered ──┬──> Completed
//	          │       ▲           │       │
//	          │       │       InRevision ─┘ (deliver again)
//	          │       └───────────┘
//	          └──> Cancelled   (reject, deadline expiry, refund approval)
//
// Completed and Cancelled are terminal: no further transitions are accepted.
// Status methods validate transitions only against the current status; guards
// that involve deadlines, revision limits or payment state live on the Order
// aggregate, which also knows which actor role may request each action.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order awaits the provider's response
	// within the confirmation deadline.
	Pending

	// AwaitingConfirmation indicates payment is being confirmed externally.
	AwaitingConfirmation

	// Active indicates the provider accepted the order and work is in progress.
	Active

	// InRevision indicates the requester demanded rework of a delivery.
	InRevision

	// Delivered indicates the provider submitted the work for acceptance.
	Delivered

	// Completed indicates the requester accepted the delivery. Terminal.
	Completed

	// Cancelled indicates the order was rejected, expired or refunded. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "unknown",
		Pending:              "pending",
		AwaitingConfirmation: "awaiting_confirmation",
		Active:               "active",
		InRevision:           "in_revision",
		Delivered:            "delivered",
		Completed:            "completed",
		Cancelled:            "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:              "pending",
		AwaitingConfirmation: "awaiting_confirmation",
		Active:               "active",
		InRevision:           "in_revision",
		Delivered:            "delivered",
		Completed:            "completed",
		Cancelled:            "cancelled",
	}
}

// StatusFromString parses a wire representation into a Status.
// Returns an error for unrecognized values; an order never holds an
// unknown status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + s)
}

// Validate checks if the Status value is one of the seven valid statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire representation of the status, or "unknown" for
// invalid values. This method implements fmt.Stringer and is safe to call
// on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Accept transitions the status to Active in response to the provider
// accepting the order.
//
// Valid transitions:
//   - Pending -> Active
//
// Returns (0, GuardError) for any other current status. The confirmation
// deadline guard is evaluated by Order.Accept, not here.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewGuardError(s.String(), ActionAccept, "only a pending order can be accepted")
	}
	return Active, nil
}

// Reject transitions the status to Cancelled in response to the provider
// rejecting the order.
//
// Valid transitions:
//   - Pending -> Cancelled
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewGuardError(s.String(), ActionReject, "only a pending order can be rejected")
	}
	return Cancelled, nil
}

// ExpireConfirmation transitions the status to Cancelled when the
// confirmation deadline lapsed without a provider response.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// The "deadline actually expired" guard is evaluated by Order.ExpireConfirmation.
func (s Status) ExpireConfirmation() (Status, error) {
	if s != Pending {
		return 0, errs.NewGuardError(s.String(), ActionExpireConfirmation,
			"only a pending order can expire")
	}
	return Cancelled, nil
}

// Deliver transitions the status to Delivered when the provider submits work.
//
// Valid transitions:
//   - Active -> Delivered (initial delivery)
//   - InRevision -> Delivered (re-delivery after rework)
func (s Status) Deliver() (Status, error) {
	if s != Active && s != InRevision {
		return 0, errs.NewGuardError(s.String(), ActionDeliver,
			"only an active or in-revision order can be delivered")
	}
	return Delivered, nil
}

// RequestRevision transitions the status to InRevision when the requester
// demands rework.
//
// Valid transitions:
//   - Delivered -> InRevision
//
// The revision-limit guard is evaluated by Order.RequestRevision, not here.
func (s Status) RequestRevision() (Status, error) {
	if s != Delivered {
		return 0, errs.NewGuardError(s.String(), ActionRequestRevision,
			"only a delivered order can be sent to revision")
	}
	return InRevision, nil
}

// AcceptDelivery transitions the status to Completed when the requester
// accepts the delivered work. Completed is a final state.
//
// Valid transitions:
//   - Delivered -> Completed
func (s Status) AcceptDelivery() (Status, error) {
	if s != Delivered {
		return 0, errs.NewGuardError(s.String(), ActionAcceptDelivery,
			"only a delivered order can be completed")
	}
	return Completed, nil
}

// ApproveRefund transitions the status to Cancelled when an administrator
// approves a refund request.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - AwaitingConfirmation -> Cancelled
//   - Active -> Cancelled
//
// The payment-state guard is evaluated by Order.ApproveRefund, not here.
func (s Status) ApproveRefund() (Status, error) {
	if s != Pending && s != AwaitingConfirmation && s != Active {
		return 0, errs.NewGuardError(s.String(), ActionApproveRefund,
			"order status is not refund-eligible")
	}
	return Cancelled, nil
}
