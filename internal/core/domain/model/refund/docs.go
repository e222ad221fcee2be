// Package refund provides the refund-resolution workflow of the marketplace:
// the staged wizard that collects a refund request (reason, payout
// destination, confirmation) and the RefundRequest aggregate it produces.
//
// The wizard is a client-local state machine with zero side effects until the
// final confirmation; exactly one RefundRequest is created per operation
// token. The administrator's approval of a request drives the order's
// cancellation through the order state machine - the request itself never
// mutates order status.
package refund
