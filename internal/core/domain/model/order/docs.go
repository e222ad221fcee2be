// Package order provides domain entities and business logic for order lifecycle
// management in the marketplace. It implements the Order aggregate root with a
// finite-state transition table and per-role transition authority.
//
// The package includes:
//   - Order: the aggregate root managing identity, payment axis, deadlines,
//     revision bounds and lifecycle transitions
//   - Status / PaymentStatus: state machines over the two independent axes
//   - RevisionRequest: a bounded child entity created only through the aggregate
//   - PackageSnapshot: the immutable copy of the purchased offering's terms
//
// Key business rules:
//   - Different actors hold disjoint transition authority; the acting role is
//     an explicit parameter of every transition, never ambient state
//   - Deadline expiry is decided lazily on read (EffectiveStatus) and made
//     durable by the system ExpireConfirmation transition
//   - Revision requests are bounded by the package snapshot's limit
//   - A refunded order is always cancelled or completed
//   - completed and cancelled are terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
