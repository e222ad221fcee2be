package refund

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrRefundRequestIsNotConstructed is returned when a RefundRequest instance
// was not created through the NewRefundRequest or RestoreRefundRequest factory methods.
var ErrRefundRequestIsNotConstructed = errors.New(
	"RefundRequest must be created via NewRefundRequest or RestoreRefundRequest constructor")

// RequestStatus represents the resolution state of a refund request.
type RequestStatus int

const (
	// RequestUnknown represents an invalid or undefined request status.
	RequestUnknown RequestStatus = iota

	// Submitted is the initial status of every refund request.
	Submitted

	// Approved indicates an administrator granted the refund.
	Approved

	// Rejected indicates an administrator declined the refund.
	Rejected
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestUnknown: "unknown",
		Submitted:      "submitted",
		Approved:       "approved",
		Rejected:       "rejected",
	}
}

// RequestStatusFromString parses a wire representation into a RequestStatus.
func RequestStatusFromString(s string) (RequestStatus, error) {
	for status, str := range getRequestStatusStrings() {
		if status != RequestUnknown && str == s {
			return status, nil
		}
	}
	return RequestUnknown, errs.NewValueIsInvalidError("refund request status: " + s)
}

// Validate checks if the RequestStatus is one of the three valid states.
func (s RequestStatus) Validate() error {
	if s != Submitted && s != Approved && s != Rejected {
		return errs.NewValueIsInvalidError("refund request status")
	}
	return nil
}

// String returns the wire representation of the request status.
func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// RefundRequest is one refund attempt for an order. It is created exactly once
// per operation token: the persistence layer rejects a second insert carrying
// the same token, which makes wizard submission idempotent against retries.
//
// A refund request never mutates order status itself; the administrator's
// approval drives the order transition through the order state machine.
type RefundRequest struct {
	id             kernel.UUID
	orderID        kernel.UUID
	requestedBy    kernel.UUID
	reason         Reason
	bankAccountID  kernel.UUID
	amount         kernel.Money
	status         RequestStatus
	operationToken string
	createdAt      time.Time

	isConstructed bool
}

// NewRefundRequest creates a refund request in Submitted status.
// The amount is the order's paid amount copied from its package snapshot,
// never user input. The operation token must be non-empty; it is the
// idempotency key of the submission.
func NewRefundRequest(
	id, orderID, requestedBy, bankAccountID kernel.UUID,
	reason Reason,
	amount kernel.Money,
	operationToken string,
	createdAt time.Time,
) (*RefundRequest, error) {
	r := &RefundRequest{
		status:        Submitted,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setIDs(id, orderID, requestedBy, bankAccountID),
		r.setReason(reason),
		r.setAmount(amount),
		r.setOperationToken(operationToken),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRefundRequest reconstructs a refund request from persistence.
func RestoreRefundRequest(
	id, orderID, requestedBy, bankAccountID kernel.UUID,
	reason Reason,
	amount kernel.Money,
	status RequestStatus,
	operationToken string,
	createdAt time.Time,
) (*RefundRequest, error) {
	r, err := NewRefundRequest(id, orderID, requestedBy, bankAccountID, reason, amount, operationToken, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	r.status = status
	return r, nil
}

// Validate ensures the RefundRequest instance was properly constructed.
func (r *RefundRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRefundRequestIsNotConstructed
	}
	return nil
}

// ID returns the refund request's unique identifier.
func (r *RefundRequest) ID() kernel.UUID {
	return r.id
}

// OrderID returns the owning order's identifier.
func (r *RefundRequest) OrderID() kernel.UUID {
	return r.orderID
}

// RequestedBy returns the requesting user's identifier.
func (r *RefundRequest) RequestedBy() kernel.UUID {
	return r.requestedBy
}

// Reason returns the validated refund reason.
func (r *RefundRequest) Reason() Reason {
	return r.reason
}

// BankAccountID returns the selected payout destination's identifier.
func (r *RefundRequest) BankAccountID() kernel.UUID {
	return r.bankAccountID
}

// Amount returns the refund amount copied from the order's paid amount.
func (r *RefundRequest) Amount() kernel.Money {
	return r.amount
}

// Status returns the resolution state of the request.
func (r *RefundRequest) Status() RequestStatus {
	return r.status
}

// OperationToken returns the idempotency key the request was submitted with.
func (r *RefundRequest) OperationToken() string {
	return r.operationToken
}

// CreatedAt returns when the request was submitted.
func (r *RefundRequest) CreatedAt() time.Time {
	return r.createdAt
}

// Approve marks the request approved. Only a submitted request can be resolved.
func (r *RefundRequest) Approve() error {
	if r.status != Submitted {
		return errs.NewGuardError(r.status.String(), "approve", "refund request is already resolved")
	}
	r.status = Approved
	return nil
}

// Reject marks the request rejected. Only a submitted request can be resolved.
func (r *RefundRequest) Reject() error {
	if r.status != Submitted {
		return errs.NewGuardError(r.status.String(), "reject", "refund request is already resolved")
	}
	r.status = Rejected
	return nil
}

func (r *RefundRequest) setIDs(id, orderID, requestedBy, bankAccountID kernel.UUID) error {
	for _, pair := range []struct {
		name string
		id   kernel.UUID
	}{
		{"id", id}, {"order id", orderID}, {"requested by", requestedBy}, {"bank account id", bankAccountID},
	} {
		if err := pair.id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(pair.name, err)
		}
	}
	r.id = id
	r.orderID = orderID
	r.requestedBy = requestedBy
	r.bankAccountID = bankAccountID
	return nil
}

func (r *RefundRequest) setReason(reason Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	r.reason = reason
	return nil
}

func (r *RefundRequest) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	r.amount = amount
	return nil
}

func (r *RefundRequest) setOperationToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("operation token")
	}
	r.operationToken = token
	return nil
}
