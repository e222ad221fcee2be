package refund

import (
	"errors"

	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrWizardIsNotConstructed is returned when a Wizard was not created via NewWizard.
	ErrWizardIsNotConstructed = errors.New("Wizard must be created via NewWizard constructor")

	// ErrOrderNotRefundable is wrapped into the GuardError returned when the
	// order's payment or lifecycle state makes it ineligible for a refund.
	ErrOrderNotRefundable = errors.New("order is not refund-eligible")
)

// Step identifies a stage of the refund wizard. The wizard is an explicit
// finite-state machine over these steps, independent of any rendering concern;
// the zero value is the legal initial step.
type Step int

const (
	// StepReason collects the refund reason.
	StepReason Step = iota

	// StepDestination collects the payout destination.
	StepDestination

	// StepConfirm shows the read-only summary and accepts the submission.
	StepConfirm
)

// String returns the display name of the wizard step.
func (s Step) String() string {
	switch s {
	case StepReason:
		return "reason"
	case StepDestination:
		return "destination"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Summary is the read-only content of the CONFIRM step. The destination is
// masked and the amount is the order's paid amount, sourced server-side so
// the user cannot tamper with it.
type Summary struct {
	ReasonText        string
	BankName          string
	MaskedDestination string
	Amount            kernel.Money
}

// Submission is the payload BuildSubmission produces at the CONFIRM step.
// It is the only output of the wizard: handing it to the submit-refund
// use case is the single side-effecting act of the whole workflow.
type Submission struct {
	OrderID        kernel.UUID
	RequestedBy    kernel.UUID
	Reason         Reason
	BankAccountID  kernel.UUID
	Amount         kernel.Money
	OperationToken string
}

// Wizard is the staged collector of a refund request: REASON -> DESTINATION ->
// CONFIRM, with declared forward guards and always-legal backward moves that
// discard nothing. The wizard holds caller-local state only and never writes;
// abandoning it at any step therefore has zero side effects.
//
// Eligibility is checked twice: at construction, so an ineligible order never
// opens the wizard, and again in BuildSubmission, because the order may have
// moved on while the wizard was open.
//
// Example:
//
//	w, err := refund.NewWizard(o, requesterID)
//	if err != nil {
//	    return err // order not refund-eligible
//	}
//	if err := w.SelectReason(refund.ReasonOther, "delayed delivery"); err != nil { ... }
//	if err := w.Next(); err != nil { ... }
//	if err := w.SelectDestination(account); err != nil { ... }
//	if err := w.Next(); err != nil { ... }
//	summary, _ := w.Summary()
//	submission, err := w.BuildSubmission(operationToken)
type Wizard struct {
	orderID       kernel.UUID
	requestedBy   kernel.UUID
	orderStatus   order.Status
	paymentStatus order.PaymentStatus
	amount        kernel.Money

	step   Step
	reason *Reason

	destinationID     *kernel.UUID
	destinationBank   string
	destinationMasked string

	isConstructed bool
}

// refundEligible is the refund-eligibility guard over the two order axes.
// Delivered orders go through revision or acceptance instead; completed
// orders are final.
func refundEligible(status order.Status, payment order.PaymentStatus) bool {
	if payment != order.PaymentPaid {
		return false
	}
	switch status {
	case order.Pending, order.AwaitingConfirmation, order.Cancelled, order.Active:
		return true
	default:
		return false
	}
}

// EnsureRefundable checks that the order's payment and lifecycle state allow a
// refund right now. Returns a GuardError wrapping ErrOrderNotRefundable when it
// does not. The submit use case calls this against the freshly re-read order so
// a wizard kept open across a state change cannot produce a stale submission.
func EnsureRefundable(o *order.Order) error {
	if !refundEligible(o.Status(), o.PaymentStatus()) {
		return errs.NewGuardErrorWithCause(o.Status().String(), "request_refund",
			"order is not refund-eligible", ErrOrderNotRefundable)
	}
	return nil
}

// NewWizard opens a refund wizard for the given order on behalf of its
// requester. Returns an AuthorizationError if requestedBy is not the order's
// requester, and a GuardError wrapping ErrOrderNotRefundable if the order's
// payment or lifecycle state is ineligible.
func NewWizard(o *order.Order, requestedBy kernel.UUID) (*Wizard, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := requestedBy.Validate(); err != nil {
		return nil, err
	}
	if !o.RequesterID().IsEqual(requestedBy) {
		return nil, errs.NewAuthorizationError("user", "request a refund for another user's order")
	}
	if err := EnsureRefundable(o); err != nil {
		return nil, err
	}

	return &Wizard{
		orderID:       o.ID(),
		requestedBy:   requestedBy,
		orderStatus:   o.Status(),
		paymentStatus: o.PaymentStatus(),
		amount:        o.Snapshot().Price(),
		step:          StepReason,
		isConstructed: true,
	}, nil
}

// Validate ensures the Wizard was created through NewWizard.
func (w *Wizard) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWizardIsNotConstructed
	}
	return nil
}

// Step returns the wizard's current step.
func (w *Wizard) Step() Step {
	return w.step
}

// SelectReason records the reason choice. Legal only at the REASON step.
// Re-selecting overwrites the previous choice.
func (w *Wizard) SelectReason(category, detail string) error {
	if w.step != StepReason {
		return errs.NewGuardError(w.step.String(), "select_reason", "reason is chosen at the reason step")
	}

	reason, err := NewReason(category, detail)
	if err != nil {
		return err
	}

	w.reason = &reason
	return nil
}

// SelectDestination records the payout-destination choice. Legal only at the
// DESTINATION step. The account must belong to the requester; a user with no
// accounts creates one through the registry before selecting.
func (w *Wizard) SelectDestination(account *bankaccount.BankAccount) error {
	if w.step != StepDestination {
		return errs.NewGuardError(w.step.String(), "select_destination",
			"destination is chosen at the destination step")
	}
	if err := account.Validate(); err != nil {
		return err
	}
	if !account.IsOwnedBy(w.requestedBy) {
		return errs.NewAuthorizationError("user", "select another user's bank account")
	}

	id := account.ID()
	w.destinationID = &id
	w.destinationBank = account.BankName()
	w.destinationMasked = account.MaskedNumber()
	return nil
}

// Next advances the wizard one step. Advancing requires the current step's
// guard to pass: a reason must be selected to leave REASON, a destination to
// leave DESTINATION. CONFIRM is the last step.
func (w *Wizard) Next() error {
	switch w.step {
	case StepReason:
		if w.reason == nil {
			return errs.NewGuardError(w.step.String(), "next", "a refund reason must be selected")
		}
		w.step = StepDestination
		return nil
	case StepDestination:
		if w.destinationID == nil {
			return errs.NewGuardError(w.step.String(), "next", "a payout destination must be selected")
		}
		w.step = StepConfirm
		return nil
	default:
		return errs.NewGuardError(w.step.String(), "next", "confirm is the last step")
	}
}

// Back moves the wizard one step backward. Going back is always allowed from
// any step but the first, and discards no collected data.
func (w *Wizard) Back() error {
	switch w.step {
	case StepDestination:
		w.step = StepReason
		return nil
	case StepConfirm:
		w.step = StepDestination
		return nil
	default:
		return errs.NewGuardError(w.step.String(), "back", "reason is the first step")
	}
}

// Summary returns the read-only CONFIRM content: reason text, masked
// destination and the computed refund amount. Legal only at the CONFIRM step.
func (w *Wizard) Summary() (Summary, error) {
	if w.step != StepConfirm {
		return Summary{}, errs.NewGuardError(w.step.String(), "summary",
			"summary is available at the confirm step")
	}

	return Summary{
		ReasonText:        w.reason.Text(),
		BankName:          w.destinationBank,
		MaskedDestination: w.destinationMasked,
		Amount:            w.amount,
	}, nil
}

// BuildSubmission produces the single submission payload at the CONFIRM step.
// The operation token must be non-empty; the backing store uses it to reject a
// duplicate submission carrying the same token. Eligibility is re-checked
// against the state the wizard observed; the submit use case re-reads the
// order and checks once more against current state before writing.
func (w *Wizard) BuildSubmission(operationToken string) (Submission, error) {
	if w.step != StepConfirm {
		return Submission{}, errs.NewGuardError(w.step.String(), "submit",
			"submission happens at the confirm step")
	}
	if operationToken == "" {
		return Submission{}, errs.NewValueIsRequiredError("operation token")
	}
	if !refundEligible(w.orderStatus, w.paymentStatus) {
		return Submission{}, errs.NewGuardErrorWithCause(w.orderStatus.String(), "submit",
			"order is not refund-eligible", ErrOrderNotRefundable)
	}

	return Submission{
		OrderID:        w.orderID,
		RequestedBy:    w.requestedBy,
		Reason:         *w.reason,
		BankAccountID:  *w.destinationID,
		Amount:         w.amount,
		OperationToken: operationToken,
	}, nil
}
