package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order read model from the database.
// Effective status and deadline urgency are computed against the clock at
// read time, never trusted from storage.
type GetOrderQueryHandler struct {
	db         *gorm.DB
	thresholds kernel.DeadlineThresholds
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB, thresholds kernel.DeadlineThresholds) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, thresholds: thresholds}
}

// Handle executes the query. Returns ObjectNotFoundError when no order with
// the given identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	now := time.Now().UTC()

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			provider_id,
			status,
			payment_status,
			confirmation_deadline,
			delivery_deadline,
			revision_count,
			revision_limit,
			price_amount,
			price_currency,
			created_at,
			completed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		resp                 GetOrderQueryResponse
		id, requester        uuid.UUID
		provider             uuid.UUID
		confirmationDeadline sql.NullTime
		deliveryDeadline     sql.NullTime
		completedAt          sql.NullTime
	)

	err := row.Scan(
		&id,
		&requester,
		&provider,
		&resp.Status,
		&resp.PaymentStatus,
		&confirmationDeadline,
		&deliveryDeadline,
		&resp.RevisionCount,
		&resp.RevisionLimit,
		&resp.PriceAmount,
		&resp.PriceCurrency,
		&resp.CreatedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.RequesterID, err = kernel.UUIDFromBytes(requester[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ProviderID, err = kernel.UUIDFromBytes(provider[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if confirmationDeadline.Valid {
		t := confirmationDeadline.Time
		resp.ConfirmationDeadline = &t
	}
	if deliveryDeadline.Valid {
		t := deliveryDeadline.Time
		resp.DeliveryDeadline = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		resp.CompletedAt = &t
	}

	resp.Status = effectiveStatus(resp.Status, resp.ConfirmationDeadline, now)
	resp.Deadline = evaluateDeadline(resp.Status, resp.ConfirmationDeadline, resp.DeliveryDeadline, now, h.thresholds)

	if resp.Revisions, err = h.revisions(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) revisions(ctx context.Context, orderID kernel.UUID) ([]RevisionResponse, error) {
	revisions := make([]RevisionResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			message,
			created_at
		FROM revision_requests
		WHERE order_id = ?
		ORDER BY created_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var revision RevisionResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &revision.Message, &revision.CreatedAt); err != nil {
			return nil, err
		}

		if revision.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		revisions = append(revisions, revision)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return revisions, nil
}
