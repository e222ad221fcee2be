package queries

import (
	"context"

	"marketplace/internal/core/domain/model/bankaccount"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRefundRequestsQueryHandler retrieves an order's refund requests joined
// with their payout destinations. Destinations are masked in the read model.
type GetRefundRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetRefundRequestsQueryHandler creates a handler for refund request queries.
func NewGetRefundRequestsQueryHandler(db *gorm.DB) GetRefundRequestsQueryHandler {
	return GetRefundRequestsQueryHandler{db: db}
}

// Handle executes the query, newest request first.
func (h GetRefundRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetRefundRequestsQuery,
) ([]GetRefundRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetRefundRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.status,
			r.reason_category,
			r.reason_detail,
			b.bank_name,
			b.account_number,
			r.amount,
			r.currency,
			r.created_at
		FROM refund_requests r
		JOIN bank_accounts b ON b.id = r.bank_account_id
		WHERE r.order_id = ?
		ORDER BY r.created_at DESC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var request GetRefundRequestsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&request.Status,
			&request.ReasonCategory,
			&request.ReasonDetail,
			&request.BankName,
			&request.MaskedDestination,
			&request.Amount,
			&request.Currency,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if request.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		request.MaskedDestination = bankaccount.MaskAccountNumber(request.MaskedDestination)
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
