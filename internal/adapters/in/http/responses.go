package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
)

// deadlineJSON is the read-time deadline evaluation attached to order payloads.
// RemainingSeconds clamps at zero when the deadline has lapsed.
type deadlineJSON struct {
	RemainingSeconds int64  `json:"remainingSeconds"`
	Urgency          string `json:"urgency"`
	Expired          bool   `json:"expired"`
}

func toDeadlineJSON(d kernel.DeadlineStatus) deadlineJSON {
	return deadlineJSON{
		RemainingSeconds: int64(d.Remaining / time.Second),
		Urgency:          d.Urgency.String(),
		Expired:          d.Expired,
	}
}

type revisionJSON struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type orderJSON struct {
	ID            string `json:"id"`
	RequesterID   string `json:"requesterId"`
	ProviderID    string `json:"providerId"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	ConfirmationDeadline *time.Time   `json:"confirmationDeadline,omitempty"`
	DeliveryDeadline     *time.Time   `json:"deliveryDeadline,omitempty"`
	Deadline             deadlineJSON `json:"deadline"`

	RevisionCount int            `json:"revisionCount"`
	RevisionLimit int            `json:"revisionLimit"`
	Revisions     []revisionJSON `json:"revisions"`

	PriceAmount   int64  `json:"priceAmount"`
	PriceCurrency string `json:"priceCurrency"`

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func toOrderJSON(resp queries.GetOrderQueryResponse) orderJSON {
	revisions := make([]revisionJSON, len(resp.Revisions))
	for i, r := range resp.Revisions {
		revisions[i] = revisionJSON{
			ID:        r.ID.String(),
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		}
	}

	return orderJSON{
		ID:                   resp.ID.String(),
		RequesterID:          resp.RequesterID.String(),
		ProviderID:           resp.ProviderID.String(),
		Status:               resp.Status,
		PaymentStatus:        resp.PaymentStatus,
		ConfirmationDeadline: resp.ConfirmationDeadline,
		DeliveryDeadline:     resp.DeliveryDeadline,
		Deadline:             toDeadlineJSON(resp.Deadline),
		RevisionCount:        resp.RevisionCount,
		RevisionLimit:        resp.RevisionLimit,
		Revisions:            revisions,
		PriceAmount:          resp.PriceAmount,
		PriceCurrency:        resp.PriceCurrency,
		CreatedAt:            resp.CreatedAt,
		CompletedAt:          resp.CompletedAt,
	}
}

type orderSummaryJSON struct {
	ID            string       `json:"id"`
	RequesterID   string       `json:"requesterId"`
	ProviderID    string       `json:"providerId"`
	Status        string       `json:"status"`
	PaymentStatus string       `json:"paymentStatus"`
	Deadline      deadlineJSON `json:"deadline"`
	PriceAmount   int64        `json:"priceAmount"`
	PriceCurrency string       `json:"priceCurrency"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func toOrderSummaryJSON(resp queries.GetUserOrdersQueryResponse) orderSummaryJSON {
	return orderSummaryJSON{
		ID:            resp.ID.String(),
		RequesterID:   resp.RequesterID.String(),
		ProviderID:    resp.ProviderID.String(),
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		Deadline:      toDeadlineJSON(resp.Deadline),
		PriceAmount:   resp.PriceAmount,
		PriceCurrency: resp.PriceCurrency,
		CreatedAt:     resp.CreatedAt,
	}
}

type refundRequestJSON struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	Reason            string    `json:"reason"`
	ReasonText        string    `json:"reasonText,omitempty"`
	BankName          string    `json:"bankName"`
	MaskedDestination string    `json:"maskedDestination"`
	Amount            int64     `json:"amount"`
	Currency          string    `json:"currency"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toRefundRequestJSON(resp queries.GetRefundRequestsQueryResponse) refundRequestJSON {
	return refundRequestJSON{
		ID:                resp.ID.String(),
		Status:            resp.Status,
		Reason:            resp.ReasonCategory,
		ReasonText:        resp.ReasonDetail,
		BankName:          resp.BankName,
		MaskedDestination: resp.MaskedDestination,
		Amount:            resp.Amount,
		Currency:          resp.Currency,
		CreatedAt:         resp.CreatedAt,
	}
}

type bankAccountJSON struct {
	ID            string    `json:"id"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	HolderName    string    `json:"holderName"`
	IsPrimary     bool      `json:"isPrimary"`
	IsVerified    bool      `json:"isVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toBankAccountJSON(resp queries.GetBankAccountsQueryResponse) bankAccountJSON {
	return bankAccountJSON{
		ID:            resp.ID.String(),
		BankName:      resp.BankName,
		AccountNumber: resp.AccountNumber,
		HolderName:    resp.HolderName,
		IsPrimary:     resp.IsPrimary,
		IsVerified:    resp.IsVerified,
		CreatedAt:     resp.CreatedAt,
	}
}
