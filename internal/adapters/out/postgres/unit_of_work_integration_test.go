package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/bankaccountrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/refundrepo"
	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/refund"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the GORM unit of work against a real
// PostgreSQL database. The cases that matter here are the ones the domain
// relies on: a status transition committing atomically with its revision
// insert, and a refund submission committing atomically across repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.RevisionRequestDTO{},
		&bankaccountrepo.BankAccountDTO{},
		&refundrepo.RefundRequestDTO{},
	))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, revision_requests, bank_accounts, refund_requests").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.BankAccountRepository())
	suite.NotNil(uow1.RefundRequestRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "repeated begin must not nest")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRevisionRequest_CommitsAtomicallyWithStatusChange() {
	ctx := context.Background()
	now := time.Now().UTC()

	aggregate := createDeliveredOrder(&suite.Suite, now)
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, aggregate))

	// The revision handler's write path: one transaction carries both the
	// order row and the revision row.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	revision, err := loaded.RequestRevision(order.RoleRequester, "fix the header", now)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.OrderRepository().AddRevision(ctx, revision))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	reloaded, err := verifyUow.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InRevision, reloaded.Status())
	suite.Equal(1, reloaded.RevisionCount())

	revisions, err := verifyUow.OrderRepository().GetRevisions(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(revisions, 1)
	suite.Equal("fix the header", revisions[0].Message())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRevisionRequest_RollbackDiscardsBothWrites() {
	ctx := context.Background()
	now := time.Now().UTC()

	aggregate := createDeliveredOrder(&suite.Suite, now)
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, aggregate))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	revision, err := loaded.RequestRevision(order.RoleRequester, "fix the header", now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.OrderRepository().AddRevision(ctx, revision))

	suite.Require().NoError(uow.Rollback(ctx))

	verifyUow := suite.factory.Create()
	reloaded, err := verifyUow.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, reloaded.Status())
	suite.Equal(0, reloaded.RevisionCount())

	revisions, err := verifyUow.OrderRepository().GetRevisions(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Empty(revisions)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRefundSubmission_SpansThreeRepositories() {
	ctx := context.Background()
	now := time.Now().UTC()

	aggregate := createPaidActiveOrder(&suite.Suite, now)
	account := createOwnedAccount(&suite.Suite, aggregate.RequesterID(), now)

	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(setupUow.BankAccountRepository().Add(ctx, account))

	// The submit handler's write path: read the order and account, persist
	// the refund request, all in one transaction.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	destination, err := uow.BankAccountRepository().Get(ctx, account.ID())
	suite.Require().NoError(err)

	reason, err := refund.NewReason(refund.ReasonProviderUnreachable, "")
	suite.Require().NoError(err)
	request, err := refund.NewRefundRequest(
		kernel.NewUUID(), loaded.ID(), loaded.RequesterID(), destination.ID(),
		reason, loaded.Snapshot().Price(), "op-token-1", now,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.RefundRequestRepository().Add(ctx, request))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	stored, err := verifyUow.RefundRequestRepository().Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(refund.Submitted, stored.Status())
	suite.True(stored.OrderID().IsEqual(aggregate.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionIsolation() {
	ctx := context.Background()
	now := time.Now().UTC()

	order1 := createDeliveredOrder(&suite.Suite, now)
	order2 := createDeliveredOrder(&suite.Suite, now)

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	// Each transaction sees only its own uncommitted writes.
	_, err := uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err)

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	verifyUow := suite.factory.Create()
	_, err = verifyUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = verifyUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_WritesImmediately() {
	ctx := context.Background()
	aggregate := createDeliveredOrder(&suite.Suite, time.Now().UTC())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	verifyUow := suite.factory.Create()
	_, err := verifyUow.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

// createDeliveredOrder builds an order replayed to Delivered, ready for a
// revision request.
func createDeliveredOrder(s *suite.Suite, now time.Time) *order.Order {
	aggregate := createPaidActiveOrder(s, now)
	s.Require().NoError(aggregate.Deliver(order.RoleProvider))
	return aggregate
}

// createPaidActiveOrder builds a paid order replayed to Active.
func createPaidActiveOrder(s *suite.Suite, now time.Time) *order.Order {
	price, err := kernel.NewMoney(1_500_000, "IDR")
	s.Require().NoError(err)
	snapshot, err := order.NewPackageSnapshot(2, 7, price)
	s.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		snapshot, nil, now,
	)
	s.Require().NoError(err)
	s.Require().NoError(aggregate.ConfirmPayment(order.RoleSystem))
	s.Require().NoError(aggregate.Accept(order.RoleProvider, now))
	return aggregate
}

func createOwnedAccount(s *suite.Suite, ownerID kernel.UUID, now time.Time) *bankaccount.BankAccount {
	account, err := bankaccount.NewBankAccount(
		kernel.NewUUID(), ownerID,
		bankaccount.BankBCA, "1234567890123", "Budi Santoso",
		true, now,
	)
	s.Require().NoError(err)
	return account
}
