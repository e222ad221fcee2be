// Package http exposes the order lifecycle, refund workflow and payout
// registry over an Echo HTTP API. Handlers translate between the wire
// contract and the application's commands and queries; every domain error
// keeps its taxonomy on the way out (guard failures and conflicts map to 409,
// authorization to 403, validation to 400) so clients can react precisely.
package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// defaultCurrency is applied when an order creation request omits
	// priceCurrency.
	defaultCurrency string

	createOrderHandler       commands.CreateOrderCommandHandler
	acceptOrderHandler       commands.AcceptOrderCommandHandler
	rejectOrderHandler       commands.RejectOrderCommandHandler
	deliverOrderHandler      commands.DeliverOrderCommandHandler
	requestRevisionHandler   commands.RequestRevisionCommandHandler
	acceptDeliveryHandler    commands.AcceptDeliveryCommandHandler
	confirmPaymentHandler    commands.ConfirmPaymentCommandHandler
	submitRefundHandler      commands.SubmitRefundCommandHandler
	approveRefundHandler     commands.ApproveRefundCommandHandler
	rejectRefundHandler      commands.RejectRefundCommandHandler
	createBankAccountHandler commands.CreateBankAccountCommandHandler
	updateBankAccountHandler commands.UpdateBankAccountCommandHandler
	deleteBankAccountHandler commands.DeleteBankAccountCommandHandler

	getOrderHandler          queries.GetOrderQueryHandler
	getUserOrdersHandler     queries.GetUserOrdersQueryHandler
	getBankAccountsHandler   queries.GetBankAccountsQueryHandler
	getRefundRequestsHandler queries.GetRefundRequestsQueryHandler
}

// NewServer creates an HTTP server wired to the given command and query handlers.
func NewServer(
	defaultCurrency string,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	requestRevisionHandler commands.RequestRevisionCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	submitRefundHandler commands.SubmitRefundCommandHandler,
	approveRefundHandler commands.ApproveRefundCommandHandler,
	rejectRefundHandler commands.RejectRefundCommandHandler,
	createBankAccountHandler commands.CreateBankAccountCommandHandler,
	updateBankAccountHandler commands.UpdateBankAccountCommandHandler,
	deleteBankAccountHandler commands.DeleteBankAccountCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getBankAccountsHandler queries.GetBankAccountsQueryHandler,
	getRefundRequestsHandler queries.GetRefundRequestsQueryHandler,
) *Server {
	return &Server{
		defaultCurrency:          defaultCurrency,
		createOrderHandler:       createOrderHandler,
		acceptOrderHandler:       acceptOrderHandler,
		rejectOrderHandler:       rejectOrderHandler,
		deliverOrderHandler:      deliverOrderHandler,
		requestRevisionHandler:   requestRevisionHandler,
		acceptDeliveryHandler:    acceptDeliveryHandler,
		confirmPaymentHandler:    confirmPaymentHandler,
		submitRefundHandler:      submitRefundHandler,
		approveRefundHandler:     approveRefundHandler,
		rejectRefundHandler:      rejectRefundHandler,
		createBankAccountHandler: createBankAccountHandler,
		updateBankAccountHandler: updateBankAccountHandler,
		deleteBankAccountHandler: deleteBankAccountHandler,
		getOrderHandler:          getOrderHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getBankAccountsHandler:   getBankAccountsHandler,
		getRefundRequestsHandler: getRefundRequestsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/order", s.CreateOrder)
	e.GET("/order/:id", s.GetOrder)
	e.GET("/order/:id/refunds", s.GetRefundRequests)
	e.POST("/order/:id/accept", s.AcceptOrder)
	e.POST("/order/:id/reject", s.RejectOrder)
	e.POST("/order/:id/deliver", s.DeliverOrder)
	e.POST("/order/:id/revision", s.RequestRevision)
	e.POST("/order/:id/complete", s.AcceptDelivery)
	e.POST("/order/:id/payment/confirm", s.ConfirmPayment)

	e.GET("/user/:id/orders", s.GetUserOrders)

	e.POST("/refund", s.SubmitRefund)
	e.POST("/refund/:id/approve", s.ApproveRefund)
	e.POST("/refund/:id/reject", s.RejectRefund)

	e.GET("/bank-account", s.GetBankAccounts)
	e.POST("/bank-account", s.CreateBankAccount)
	e.PUT("/bank-account", s.UpdateBankAccount)
	e.DELETE("/bank-account", s.DeleteBankAccount)

	// Path-parameter aliases for the same operations.
	e.PUT("/bank-account/:id", s.UpdateBankAccount)
	e.DELETE("/bank-account/:id", s.DeleteBankAccount)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// statusResponse is the uniform mutation response shape.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// fail maps a use-case error to its HTTP representation. The taxonomy is
// preserved end to end: a guard rejection names the failed rule, a conflict
// tells the client to re-fetch, an authorization failure never leaks whether
// the record exists for someone else.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error() + "; refresh and review the current state before retrying"
	case errors.Is(err, errs.ErrTransitionNotAllowed):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, statusResponse{Success: false, Message: message})
}

func parseID(raw string) (kernel.UUID, error) {
	return kernel.UUIDFromString(raw)
}

// actorRequest carries the acting user's identity. There is no ambient session
// state: every mutation names its actor explicitly.
type actorRequest struct {
	ActorID string `json:"actorId"`
}

func bindActor(ctx echo.Context) (kernel.UUID, error) {
	var req actorRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return parseID(req.ActorID)
}

// --- orders ---

type createOrderRequest struct {
	RequesterID          string     `json:"requesterId"`
	ProviderID           string     `json:"providerId"`
	RevisionLimit        int        `json:"revisionLimit"`
	DeliveryTimeDays     int        `json:"deliveryTimeDays"`
	PriceAmount          int64      `json:"priceAmount"`
	PriceCurrency        string     `json:"priceCurrency"`
	ConfirmationDeadline *time.Time `json:"confirmationDeadline,omitempty"`
}

type createOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// CreateOrder handles POST /order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	requesterID, err := parseID(req.RequesterID)
	if err != nil {
		return fail(ctx, err)
	}
	providerID, err := parseID(req.ProviderID)
	if err != nil {
		return fail(ctx, err)
	}

	currency := req.PriceCurrency
	if currency == "" {
		currency = s.defaultCurrency
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, requesterID, providerID,
		req.RevisionLimit, req.DeliveryTimeDays,
		req.PriceAmount, currency,
		req.ConfirmationDeadline,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{Success: true, OrderID: orderID.String()})
}

// GetOrder handles GET /order/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderJSON(resp))
}

// GetUserOrders handles GET /user/:id/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := parseID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]orderSummaryJSON, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummaryJSON(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles POST /order/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.orderAction(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewAcceptOrderCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectOrder handles POST /order/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	return s.orderAction(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewRejectOrderCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles POST /order/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.orderAction(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewDeliverOrderCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// AcceptDelivery handles POST /order/:id/complete.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	return s.orderAction(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewAcceptDeliveryCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

type revisionRequest struct {
	ActorID string `json:"actorId"`
	Message string `json:"message"`
}

// RequestRevision handles POST /order/:id/revision.
func (s *Server) RequestRevision(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req revisionRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	actorID, err := parseID(req.ActorID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRequestRevisionCommand(orderID, actorID, req.Message)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.requestRevisionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Success: true})
}

// ConfirmPayment handles POST /order/:id/payment/confirm. Invoked by the
// payment callback, not by end users.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Success: true})
}

func (s *Server) orderAction(ctx echo.Context, run func(orderID, actorID kernel.UUID) error) error {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	actorID, err := bindActor(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	if err = run(orderID, actorID); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Success: true})
}

// --- refunds ---

type submitRefundRequest struct {
	OrderID        string `json:"orderId"`
	RequestedBy    string `json:"requestedBy"`
	Reason         string `json:"reason"`
	ReasonText     string `json:"reasonText,omitempty"`
	BankAccountID  string `json:"bankAccountId"`
	OperationToken string `json:"operationToken"`
}

// SubmitRefund handles POST /refund. Resubmitting the same operation token is
// reported as success: the first submission already created the request.
func (s *Server) SubmitRefund(ctx echo.Context) error {
	var req submitRefundRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID, err := parseID(req.OrderID)
	if err != nil {
		return fail(ctx, err)
	}
	requestedBy, err := parseID(req.RequestedBy)
	if err != nil {
		return fail(ctx, err)
	}
	bankAccountID, err := parseID(req.BankAccountID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSubmitRefundCommand(
		orderID, requestedBy, bankAccountID,
		req.Reason, req.ReasonText, req.OperationToken,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.submitRefundHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, ports.ErrDuplicateOperation) {
			return ctx.JSON(http.StatusOK, statusResponse{
				Success: true,
				Message: "refund request was already submitted",
			})
		}
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, statusResponse{Success: true})
}

// ApproveRefund handles POST /refund/:id/approve. Administrator only.
func (s *Server) ApproveRefund(ctx echo.Context) error {
	return s.refundResolution(ctx, func(requestID, actorID kernel.UUID) error {
		cmd, err := commands.NewApproveRefundCommand(requestID, actorID)
		if err != nil {
			return err
		}
		return s.approveRefundHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectRefund handles POST /refund/:id/reject. Administrator only.
func (s *Server) RejectRefund(ctx echo.Context) error {
	return s.refundResolution(ctx, func(requestID, actorID kernel.UUID) error {
		cmd, err := commands.NewRejectRefundCommand(requestID, actorID)
		if err != nil {
			return err
		}
		return s.rejectRefundHandler.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) refundResolution(ctx echo.Context, run func(requestID, actorID kernel.UUID) error) error {
	requestID, err := parseID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	actorID, err := bindActor(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	if err = run(requestID, actorID); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Success: true})
}

// GetRefundRequests handles GET /order/:id/refunds.
func (s *Server) GetRefundRequests(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetRefundRequestsQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	requests, err := s.getRefundRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]refundRequestJSON, len(requests))
	for i, r := range requests {
		response[i] = toRefundRequestJSON(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// --- bank accounts ---

type bankAccountRequest struct {
	BankAccountID string `json:"bankAccountId,omitempty"`
	ActorID       string `json:"actorId"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
	IsPrimary     bool   `json:"isPrimary"`
}

type bankAccountsResponse struct {
	Success      bool              `json:"success"`
	BankAccounts []bankAccountJSON `json:"bankAccounts"`
	Banks        []string          `json:"banks,omitempty"`
}

// GetBankAccounts handles GET /bank-account?userId=...
// The supported bank list rides along so clients can render the add form
// without a second round trip.
func (s *Server) GetBankAccounts(ctx echo.Context) error {
	ownerID, err := parseID(ctx.QueryParam("userId"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetBankAccountsQuery(ownerID)
	if err != nil {
		return fail(ctx, err)
	}

	accounts, err := s.getBankAccountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := bankAccountsResponse{
		Success:      true,
		BankAccounts: make([]bankAccountJSON, len(accounts)),
		Banks:        bankaccount.SupportedBanks(),
	}
	for i, a := range accounts {
		response.BankAccounts[i] = toBankAccountJSON(a)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBankAccount handles POST /bank-account.
func (s *Server) CreateBankAccount(ctx echo.Context) error {
	var req bankAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	ownerID, err := parseID(req.ActorID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateBankAccountCommand(
		ownerID, req.BankName, req.AccountNumber, req.HolderName, req.IsPrimary,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createBankAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, statusResponse{Success: true, Message: "bank account added"})
}

// UpdateBankAccount handles PUT /bank-account, with the account identified by
// the bankAccountId body field, and the PUT /bank-account/:id alias.
func (s *Server) UpdateBankAccount(ctx echo.Context) error {
	var req bankAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	rawAccountID := ctx.Param("id")
	if rawAccountID == "" {
		rawAccountID = req.BankAccountID
	}
	accountID, err := parseID(rawAccountID)
	if err != nil {
		return fail(ctx, err)
	}

	actorID, err := parseID(req.ActorID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateBankAccountCommand(
		accountID, actorID, req.BankName, req.AccountNumber, req.HolderName, req.IsPrimary,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateBankAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Success: true, Message: "bank account updated"})
}

// DeleteBankAccount handles DELETE /bank-account?bankAccountId=&userId= and
// the DELETE /bank-account/:id alias. The actor travels in the userId query
// parameter because DELETE carries no body.
func (s *Server) DeleteBankAccount(ctx echo.Context) error {
	rawAccountID := ctx.Param("id")
	if rawAccountID == "" {
		rawAccountID = ctx.QueryParam("bankAccountId")
	}
	accountID, err := parseID(rawAccountID)
	if err != nil {
		return fail(ctx, err)
	}

	actorID, err := parseID(ctx.QueryParam("userId"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteBankAccountCommand(accountID, actorID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteBankAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Success: true, Message: "bank account deleted"})
}
