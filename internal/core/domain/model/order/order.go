package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrConfirmationDeadlineExpired is wrapped into the GuardError returned when
	// the provider tries to accept an order whose confirmation deadline lapsed.
	ErrConfirmationDeadlineExpired = errors.New("confirmation deadline expired")

	// ErrPaymentNotEligible is wrapped into the GuardError returned when a
	// refund approval is attempted against an unpaid order.
	ErrPaymentNotEligible = errors.New("payment status is not eligible")
)

// Order represents one purchased engagement between a requester and a provider.
// It is the aggregate root that manages the order lifecycle from creation
// through completion, cancellation or refund.
//
// Order follows these invariants:
//   - Exactly one of the seven statuses at any time, never unknown
//   - PaymentRefunded implies status Cancelled or Completed
//   - revisionCount never exceeds the package snapshot's revision limit
//   - The package snapshot is immutable after creation
//   - completedAt is set exactly once, on the transition to Completed
//   - Can only be created through NewOrder or RestoreOrder
//
// Every transition method takes the acting Role explicitly; the aggregate
// rejects a listed action requested by the wrong role with an
// AuthorizationError, and an unlisted action with a GuardError naming the
// current status and the rejected action. Terminal states accept nothing.
//
// The version field supports conditional persistence: a write is applied only
// if the stored version still matches the version this instance was loaded
// with. Two actors racing to resolve the same order (e.g. provider accept vs.
// system deadline expiry) are serialized by that check, not by locks.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// requesterID and providerID are opaque references to external user records
	requesterID kernel.UUID
	providerID  kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// paymentStatus is the independent payment axis
	paymentStatus PaymentStatus

	// confirmationDeadline bounds the provider's response window (nil = no deadline)
	confirmationDeadline *time.Time

	// deliveryDeadline is set on acceptance from the snapshot's delivery time
	deliveryDeadline *time.Time

	// createdAt is immutable; completedAt is set once on completion
	createdAt   time.Time
	completedAt *time.Time

	// revisionCount is monotonically non-decreasing while the order is open
	revisionCount int

	// snapshot is the immutable copy of the purchased package's terms
	snapshot PackageSnapshot

	// version is the optimistic-concurrency counter managed by the repository
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with payment pending.
// The confirmation deadline is optional; without one the order waits for the
// provider's response indefinitely.
//
// Parameters:
//   - id: unique identifier for the order
//   - requesterID: the purchasing client
//   - providerID: the freelancer expected to respond
//   - snapshot: immutable copy of the purchased package's terms
//   - confirmationDeadline: optional bound on the provider's response window
//   - createdAt: creation timestamp (immutable)
//
// Returns a validation error if any identifier or the snapshot is invalid,
// or if requester and provider are the same user.
func NewOrder(
	id, requesterID, providerID kernel.UUID,
	snapshot PackageSnapshot,
	confirmationDeadline *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:               Pending,
		paymentStatus:        PaymentPending,
		confirmationDeadline: confirmationDeadline,
		createdAt:            createdAt,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(requesterID, providerID),
		o.setSnapshot(snapshot),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// lifecycle. All stored fields are validated; the version is the one the row
// was read with and becomes the precondition of the next conditional write.
func RestoreOrder(
	id, requesterID, providerID kernel.UUID,
	status Status,
	paymentStatus PaymentStatus,
	confirmationDeadline, deliveryDeadline *time.Time,
	createdAt time.Time,
	completedAt *time.Time,
	revisionCount int,
	snapshot PackageSnapshot,
	version int,
) (*Order, error) {
	o := &Order{
		confirmationDeadline: confirmationDeadline,
		deliveryDeadline:     deliveryDeadline,
		createdAt:            createdAt,
		completedAt:          completedAt,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(requesterID, providerID),
		o.setSnapshot(snapshot),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if revisionCount < 0 || revisionCount > snapshot.RevisionLimit() {
		return nil, errs.NewValueIsOutOfRangeError("revision count", revisionCount, 0, snapshot.RevisionLimit())
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.revisionCount = revisionCount
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RequesterID returns the purchasing client's identifier.
func (o *Order) RequesterID() kernel.UUID {
	return o.requesterID
}

// ProviderID returns the freelancer's identifier.
func (o *Order) ProviderID() kernel.UUID {
	return o.providerID
}

// Status returns the stored status of the order. See EffectiveStatus for the
// deadline-aware view.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment state of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ConfirmationDeadline returns the provider-response deadline, or nil.
func (o *Order) ConfirmationDeadline() *time.Time {
	return o.confirmationDeadline
}

// DeliveryDeadline returns the delivery deadline set on acceptance, or nil.
func (o *Order) DeliveryDeadline() *time.Time {
	return o.deliveryDeadline
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// RevisionCount returns the number of revision requests made so far.
func (o *Order) RevisionCount() int {
	return o.revisionCount
}

// Snapshot returns the immutable package snapshot.
func (o *Order) Snapshot() PackageSnapshot {
	return o.snapshot
}

// Version returns the optimistic-concurrency counter this instance was loaded with.
func (o *Order) Version() int {
	return o.version
}

// EffectiveStatus returns the status the order is logically in at the given
// moment. A Pending order whose confirmation deadline has lapsed reports
// Cancelled even before the stored row is rewritten: expiry is decided on
// read, and the stored status catches up when the system transition commits.
func (o *Order) EffectiveStatus(now time.Time) Status {
	if o.status == Pending {
		ds := kernel.EvaluateDeadline(o.confirmationDeadline, now, kernel.DeadlineThresholds{})
		if ds.Expired {
			return Cancelled
		}
	}
	return o.status
}

// ConfirmationDeadlineStatus evaluates the confirmation deadline at the given
// moment. It must be called on every read, never cached.
func (o *Order) ConfirmationDeadlineStatus(now time.Time, thresholds kernel.DeadlineThresholds) kernel.DeadlineStatus {
	return kernel.EvaluateDeadline(o.confirmationDeadline, now, thresholds)
}

// Accept records the provider accepting the order: Pending -> Active.
// Only the provider role may accept. The confirmation deadline must not have
// lapsed; a lapsed deadline means the order is logically cancelled already,
// and the GuardError wraps ErrConfirmationDeadlineExpired.
// On success the delivery deadline is set from the snapshot's delivery time.
func (o *Order) Accept(actor Role, now time.Time) error {
	if actor != RoleProvider {
		return errs.NewAuthorizationError(actor.String(), ActionAccept)
	}

	ds := kernel.EvaluateDeadline(o.confirmationDeadline, now, kernel.DeadlineThresholds{})
	if ds.Expired {
		return errs.NewGuardErrorWithCause(o.status.String(), ActionAccept,
			"confirmation deadline expired", ErrConfirmationDeadlineExpired)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	deliveryDeadline := now.AddDate(0, 0, o.snapshot.DeliveryTimeDays())
	o.status = newStatus
	o.deliveryDeadline = &deliveryDeadline
	return nil
}

// Reject records the provider declining the order: Pending -> Cancelled.
// Only the provider role may reject.
func (o *Order) Reject(actor Role) error {
	if actor != RoleProvider {
		return errs.NewAuthorizationError(actor.String(), ActionReject)
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ExpireConfirmation applies the deadline-tick transition: Pending -> Cancelled
// once the confirmation deadline has lapsed with no provider response.
// Only the system role may apply it, and only when the deadline actually
// expired; this is the persistence side of the lazy-expiry evaluation.
func (o *Order) ExpireConfirmation(actor Role, now time.Time) error {
	if actor != RoleSystem {
		return errs.NewAuthorizationError(actor.String(), ActionExpireConfirmation)
	}

	ds := kernel.EvaluateDeadline(o.confirmationDeadline, now, kernel.DeadlineThresholds{})
	if !ds.Expired {
		return errs.NewGuardError(o.status.String(), ActionExpireConfirmation,
			"confirmation deadline has not expired")
	}

	newStatus, err := o.status.ExpireConfirmation()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver records the provider submitting work: Active|InRevision -> Delivered.
// Only the provider role may deliver.
func (o *Order) Deliver(actor Role) error {
	if actor != RoleProvider {
		return errs.NewAuthorizationError(actor.String(), ActionDeliver)
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RequestRevision records the requester demanding rework: Delivered -> InRevision.
// Only the requester role may request a revision. The message must be
// non-empty after trimming, and the revision count must be under the package
// snapshot's limit; at the limit the GuardError wraps ErrRevisionLimitReached.
//
// On success the revision count increments by exactly one and the returned
// RevisionRequest must be persisted in the same transaction as the order's
// status change: partial application of either half violates the revision
// invariant.
func (o *Order) RequestRevision(actor Role, message string, now time.Time) (*RevisionRequest, error) {
	if actor != RoleRequester {
		return nil, errs.NewAuthorizationError(actor.String(), ActionRequestRevision)
	}

	if o.IsRevisionDisabled() {
		return nil, errs.NewGuardErrorWithCause(o.status.String(), ActionRequestRevision,
			"revision limit reached", ErrRevisionLimitReached)
	}

	revision, err := newRevisionRequest(o.id, message, now)
	if err != nil {
		return nil, err
	}

	newStatus, err := o.status.RequestRevision()
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	o.revisionCount++
	return revision, nil
}

// IsRevisionDisabled reports whether the revision limit has been reached.
// Used to hide the revision affordance rather than let a request fail silently.
func (o *Order) IsRevisionDisabled() bool {
	return o.revisionCount >= o.snapshot.RevisionLimit()
}

// AcceptDelivery records the requester accepting the work: Delivered -> Completed.
// Only the requester role may accept delivery. completedAt is set exactly once.
func (o *Order) AcceptDelivery(actor Role, now time.Time) error {
	if actor != RoleRequester {
		return errs.NewAuthorizationError(actor.String(), ActionAcceptDelivery)
	}

	newStatus, err := o.status.AcceptDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.completedAt == nil {
		completed := now
		o.completedAt = &completed
	}
	return nil
}

// ApproveRefund records an administrator approving a refund:
// Pending|AwaitingConfirmation|Active -> Cancelled, payment Paid -> Refunded.
// Only the administrator role may approve. The order must be paid; otherwise
// the GuardError wraps ErrPaymentNotEligible.
//
// This is the only site that sets PaymentRefunded, so the invariant
// "refunded implies cancelled or completed" holds by construction.
func (o *Order) ApproveRefund(actor Role) error {
	if actor != RoleAdministrator {
		return errs.NewAuthorizationError(actor.String(), ActionApproveRefund)
	}

	if o.paymentStatus != PaymentPaid {
		return errs.NewGuardErrorWithCause(o.status.String(), ActionApproveRefund,
			"payment status is not paid", ErrPaymentNotEligible)
	}

	newStatus, err := o.status.ApproveRefund()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentRefunded
	return nil
}

// ConfirmPayment flips the payment axis PaymentPending -> PaymentPaid.
// Invoked on behalf of the external payment collaborator (system role).
func (o *Order) ConfirmPayment(actor Role) error {
	if actor != RoleSystem {
		return errs.NewAuthorizationError(actor.String(), ActionConfirmPayment)
	}

	if o.paymentStatus != PaymentPending {
		return errs.NewGuardError(o.status.String(), ActionConfirmPayment,
			"payment status is "+o.paymentStatus.String())
	}

	o.paymentStatus = PaymentPaid
	return nil
}

// Apply dispatches an action name from the transition table to the matching
// transition method. Unlisted action names are rejected with a GuardError,
// so no request is ever silently ignored. RequestRevision is not dispatched
// here because it carries a message and produces a child entity.
func (o *Order) Apply(action string, actor Role, now time.Time) error {
	switch action {
	case ActionAccept:
		return o.Accept(actor, now)
	case ActionReject:
		return o.Reject(actor)
	case ActionExpireConfirmation:
		return o.ExpireConfirmation(actor, now)
	case ActionDeliver:
		return o.Deliver(actor)
	case ActionAcceptDelivery:
		return o.AcceptDelivery(actor, now)
	case ActionApproveRefund:
		return o.ApproveRefund(actor)
	case ActionConfirmPayment:
		return o.ConfirmPayment(actor)
	default:
		return errs.NewGuardError(o.status.String(), action, "unknown action")
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(requesterID, providerID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	if err := providerID.Validate(); err != nil {
		return err
	}
	if requesterID.IsEqual(providerID) {
		return errs.NewValueIsInvalidErrorWithCause("provider",
			errors.New("requester and provider are the same user"))
	}
	o.requesterID = requesterID
	o.providerID = providerID
	return nil
}

func (o *Order) setSnapshot(snapshot PackageSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	o.snapshot = snapshot
	return nil
}
