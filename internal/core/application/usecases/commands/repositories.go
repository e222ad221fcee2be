// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// conditional persistence, and post-commit notification dispatch.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BankAccountRepoFactory provides access to the bank account repository within a transaction.
	BankAccountRepoFactory interface {
		BankAccountRepository() ports.BankAccountRepository
	}

	// RefundRepoFactory provides access to the refund request repository within a transaction.
	RefundRepoFactory interface {
		RefundRequestRepository() ports.RefundRequestRepository
	}

	// OrderUoW manages transactions for order-only operations: the lifecycle
	// transitions and the revision workflow (order row + revision row commit
	// together).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BankAccountUoW manages transactions for payout-destination operations.
	// The primary-flag clear and set happen inside one transaction.
	BankAccountUoW interface {
		TxManager
		BankAccountRepoFactory
	}

	// BankAccountUoWFactory creates new bank account unit of work instances.
	BankAccountUoWFactory interface {
		Create() BankAccountUoW
	}

	// RefundUoW manages transactions spanning orders, bank accounts and refund
	// requests: submission re-reads the order and the payout destination before
	// inserting the request, and approval resolves the request and refunds the
	// order as one unit.
	RefundUoW interface {
		TxManager
		OrderRepoFactory
		BankAccountRepoFactory
		RefundRepoFactory
	}

	// RefundUoWFactory creates new refund unit of work instances.
	RefundUoWFactory interface {
		Create() RefundUoW
	}
)
