package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *notify.Hub
	thresholds kernel.DeadlineThresholds
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        notify.NewHub(logger),
		thresholds: deadlineThresholds(configs),
		logger:     logger,
	}
}

// deadlineThresholds parses the configured urgency boundaries. Unset or
// malformed values yield the zero thresholds, which EvaluateDeadline treats
// as the kernel defaults.
func deadlineThresholds(configs Config) kernel.DeadlineThresholds {
	var thresholds kernel.DeadlineThresholds
	if hours, err := strconv.Atoi(configs.DeadlineCriticalHours); err == nil {
		thresholds.Critical = time.Duration(hours) * time.Hour
	}
	if hours, err := strconv.Atoi(configs.DeadlineWarningHours); err == nil {
		thresholds.Warning = time.Duration(hours) * time.Hour
	}
	return thresholds
}

// Hub exposes the in-process notification hub, both as the dispatcher the
// command handlers fire into and as the change stream subscribers read from.
func (c *CompositionRoot) Hub() *notify.Hub {
	return c.hub
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bankAccountUoWFactory() commands.BankAccountUoWFactory {
	return FuncBankAccountUoWFactory(func() commands.BankAccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) refundUoWFactory() commands.RefundUoWFactory {
	return FuncRefundUoWFactory(func() commands.RefundUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatcher() ports.NotificationDispatcher {
	return c.hub
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateRequestRevisionCommandHandler() commands.RequestRevisionCommandHandler {
	return commands.NewRequestRevisionCommandHandler(c.orderUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.orderUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateExpireOrdersCommandHandler() commands.ExpireOrdersCommandHandler {
	return commands.NewExpireOrdersCommandHandler(c.orderUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateSubmitRefundCommandHandler() commands.SubmitRefundCommandHandler {
	return commands.NewSubmitRefundCommandHandler(c.refundUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateApproveRefundCommandHandler() commands.ApproveRefundCommandHandler {
	return commands.NewApproveRefundCommandHandler(c.refundUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateRejectRefundCommandHandler() commands.RejectRefundCommandHandler {
	return commands.NewRejectRefundCommandHandler(c.refundUoWFactory(), c.dispatcher())
}

func (c *CompositionRoot) CreateCreateBankAccountCommandHandler() commands.CreateBankAccountCommandHandler {
	return commands.NewCreateBankAccountCommandHandler(c.bankAccountUoWFactory())
}

func (c *CompositionRoot) CreateUpdateBankAccountCommandHandler() commands.UpdateBankAccountCommandHandler {
	return commands.NewUpdateBankAccountCommandHandler(c.bankAccountUoWFactory())
}

func (c *CompositionRoot) CreateDeleteBankAccountCommandHandler() commands.DeleteBankAccountCommandHandler {
	return commands.NewDeleteBankAccountCommandHandler(c.bankAccountUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.thresholds)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB, c.thresholds)
}

func (c *CompositionRoot) CreateGetBankAccountsQueryHandler() queries.GetBankAccountsQueryHandler {
	return queries.NewGetBankAccountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRefundRequestsQueryHandler() queries.GetRefundRequestsQueryHandler {
	return queries.NewGetRefundRequestsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBankAccountUoWFactory func() commands.BankAccountUoW

func (f FuncBankAccountUoWFactory) Create() commands.BankAccountUoW {
	return f()
}

type FuncRefundUoWFactory func() commands.RefundUoW

func (f FuncRefundUoWFactory) Create() commands.RefundUoW {
	return f()
}
