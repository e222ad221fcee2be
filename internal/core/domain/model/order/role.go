package order

// Role identifies which party requests a transition. Every transition method
// receives the acting role explicitly as a parameter rather than reading any
// ambient session state, so guard evaluation can be tested in isolation.
//
// The transition table assigns each action to exactly one role; a mismatch is
// an authorization failure, not a guard failure.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleRequester is the client who purchased the engagement.
	RoleRequester

	// RoleProvider is the freelancer performing the work.
	RoleProvider

	// RoleAdministrator resolves refund requests.
	RoleAdministrator

	// RoleSystem applies deadline-driven transitions.
	RoleSystem
)

// String returns the wire representation of the role.
func (r Role) String() string {
	switch r {
	case RoleRequester:
		return "requester"
	case RoleProvider:
		return "provider"
	case RoleAdministrator:
		return "administrator"
	case RoleSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Action names for transition requests. Carried inside GuardError values so a
// rejected transition always reports exactly what was attempted.
const (
	ActionAccept             = "accept"
	ActionReject             = "reject"
	ActionExpireConfirmation = "expire_confirmation"
	ActionDeliver            = "deliver"
	ActionRequestRevision    = "request_revision"
	ActionAcceptDelivery     = "accept_delivery"
	ActionApproveRefund      = "refund_approved"
	ActionConfirmPayment     = "confirm_payment"
)
