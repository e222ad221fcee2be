package queries

import (
	"context"
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a user's order list from the database.
type GetUserOrdersQueryHandler struct {
	db         *gorm.DB
	thresholds kernel.DeadlineThresholds
}

// NewGetUserOrdersQueryHandler creates a handler for user order-list queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB, thresholds kernel.DeadlineThresholds) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db, thresholds: thresholds}
}

// Handle executes the query. Returns an empty slice when the user has no orders.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			provider_id,
			status,
			payment_status,
			confirmation_deadline,
			delivery_deadline,
			price_amount,
			price_currency,
			created_at
		FROM orders
		WHERE requester_id = ? OR provider_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes(), query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                 GetUserOrdersQueryResponse
			id, requester        uuid.UUID
			provider             uuid.UUID
			confirmationDeadline sql.NullTime
			deliveryDeadline     sql.NullTime
		)

		err = rows.Scan(
			&id,
			&requester,
			&provider,
			&resp.Status,
			&resp.PaymentStatus,
			&confirmationDeadline,
			&deliveryDeadline,
			&resp.PriceAmount,
			&resp.PriceCurrency,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RequesterID, err = kernel.UUIDFromBytes(requester[:]); err != nil {
			return nil, err
		}
		if resp.ProviderID, err = kernel.UUIDFromBytes(provider[:]); err != nil {
			return nil, err
		}

		var confirmation, delivery *time.Time
		if confirmationDeadline.Valid {
			t := confirmationDeadline.Time
			confirmation = &t
		}
		if deliveryDeadline.Valid {
			t := deliveryDeadline.Time
			delivery = &t
		}

		resp.Status = effectiveStatus(resp.Status, confirmation, now)
		resp.Deadline = evaluateDeadline(resp.Status, confirmation, delivery, now, h.thresholds)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
