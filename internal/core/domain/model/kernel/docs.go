// Package kernel provides core domain primitives for the marketplace system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A value object for amounts in minor currency units, used for package
//     snapshot prices and refund amounts
//   - Deadline evaluation: a pure, total function deriving remaining time, urgency
//     tier and expiry from a deadline timestamp and "now"
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// Deadline evaluation deliberately has no state: it is re-run on every read of
// an order, because caching a result would let a lapsed confirmation deadline
// go unnoticed.
package kernel
