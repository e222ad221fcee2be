package order

import (
	"marketplace/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order. It is an axis
// independent from Status, with one coupling invariant: a refunded order is
// always cancelled or completed. That invariant is enforced at the only site
// that sets PaymentRefunded (Order.ApproveRefund).
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending indicates payment has not been confirmed yet.
	PaymentPending

	// PaymentPaid indicates payment was confirmed by the external payment collaborator.
	PaymentPaid

	// PaymentRefunded indicates the payment was returned to the requester.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a wire representation into a PaymentStatus.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidError("payment status: " + s)
}

// Validate checks if the PaymentStatus value is one of the three valid states.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid && s != PaymentRefunded {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// String returns the wire representation of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
