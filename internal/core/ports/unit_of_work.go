package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The repositories it hands out are bound to the current transaction, which
// is what lets an order-status write and its revision-request insert (or the
// refund-request insert that accompanies an approval) commit or roll back as
// one unit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// BankAccountRepository returns a BankAccountRepository bound to the current transaction.
	BankAccountRepository() BankAccountRepository

	// RefundRequestRepository returns a RefundRequestRepository bound to the current transaction.
	RefundRequestRepository() RefundRequestRepository
}
