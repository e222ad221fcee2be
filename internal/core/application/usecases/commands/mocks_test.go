package commands_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/refund"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) AddRevision(ctx context.Context, revision *order.RevisionRequest) error {
	args := m.Called(ctx, revision)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetRevisions(ctx context.Context, orderID kernel.UUID) ([]*order.RevisionRequest, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.RevisionRequest), args.Error(1)
}

func (m *MockOrderRepository) GetExpiredPending(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBankAccountRepository struct{ mock.Mock }

func (m *MockBankAccountRepository) Add(ctx context.Context, aggregate *bankaccount.BankAccount) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBankAccountRepository) Update(ctx context.Context, aggregate *bankaccount.BankAccount) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBankAccountRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBankAccountRepository) Get(ctx context.Context, id kernel.UUID) (*bankaccount.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bankaccount.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) GetAllByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*bankaccount.BankAccount, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bankaccount.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ClearPrimary(ctx context.Context, ownerID kernel.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

type MockRefundRequestRepository struct{ mock.Mock }

func (m *MockRefundRequestRepository) Add(ctx context.Context, aggregate *refund.RefundRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRefundRequestRepository) Update(ctx context.Context, aggregate *refund.RefundRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRefundRequestRepository) Get(ctx context.Context, id kernel.UUID) (*refund.RefundRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refund.RefundRequest), args.Error(1)
}

func (m *MockRefundRequestRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*refund.RefundRequest, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*refund.RefundRequest), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBankAccountUoW struct{ mock.Mock }

func (m *MockBankAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBankAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBankAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBankAccountUoW) BankAccountRepository() ports.BankAccountRepository {
	args := m.Called()
	return args.Get(0).(ports.BankAccountRepository)
}

type MockBankAccountUoWFactory struct{ mock.Mock }

func (m *MockBankAccountUoWFactory) Create() commands.BankAccountUoW {
	args := m.Called()
	return args.Get(0).(commands.BankAccountUoW)
}

type MockRefundUoW struct{ mock.Mock }

func (m *MockRefundUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefundUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefundUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefundUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockRefundUoW) BankAccountRepository() ports.BankAccountRepository {
	args := m.Called()
	return args.Get(0).(ports.BankAccountRepository)
}

func (m *MockRefundUoW) RefundRequestRepository() ports.RefundRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RefundRequestRepository)
}

type MockRefundUoWFactory struct{ mock.Mock }

func (m *MockRefundUoWFactory) Create() commands.RefundUoW {
	args := m.Called()
	return args.Get(0).(commands.RefundUoW)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Dispatch(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
