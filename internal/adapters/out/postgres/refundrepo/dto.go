// Package refundrepo provides data transfer objects and mapping functions
// for refund request persistence.
package refundrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/refund"

	"github.com/google/uuid"
)

// RefundRequestDTO represents the database structure for persisting refund
// requests. The unique index on the operation token is what makes submission
// idempotent: a duplicate insert fails at the database, not by a racy
// read-then-write check.
type RefundRequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	RequestedBy   uuid.UUID `gorm:"type:uuid;index"`
	BankAccountID uuid.UUID `gorm:"type:uuid"`

	ReasonCategory string
	ReasonDetail   string

	Amount   int64
	Currency string

	Status         string
	OperationToken string `gorm:"uniqueIndex"`

	CreatedAt time.Time
}

// TableName specifies the database table name for refund request entities.
func (RefundRequestDTO) TableName() string {
	return "refund_requests"
}

// fromDomain converts a refund request aggregate to its database representation.
func fromDomain(request *refund.RefundRequest) RefundRequestDTO {
	return RefundRequestDTO{
		ID:             request.ID().Bytes(),
		OrderID:        request.OrderID().Bytes(),
		RequestedBy:    request.RequestedBy().Bytes(),
		BankAccountID:  request.BankAccountID().Bytes(),
		ReasonCategory: request.Reason().Category(),
		ReasonDetail:   request.Reason().Detail(),
		Amount:         request.Amount().Amount(),
		Currency:       request.Amount().Currency(),
		Status:         request.Status().String(),
		OperationToken: request.OperationToken(),
		CreatedAt:      request.CreatedAt(),
	}
}

// toDomain converts a database DTO to a refund request aggregate.
func toDomain(dto RefundRequestDTO) (*refund.RefundRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	requestedBy, err := kernel.UUIDFromBytes(dto.RequestedBy[:])
	if err != nil {
		return nil, err
	}

	bankAccountID, err := kernel.UUIDFromBytes(dto.BankAccountID[:])
	if err != nil {
		return nil, err
	}

	reason, err := refund.NewReason(dto.ReasonCategory, dto.ReasonDetail)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount, dto.Currency)
	if err != nil {
		return nil, err
	}

	status, err := refund.RequestStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return refund.RestoreRefundRequest(
		id, orderID, requestedBy, bankAccountID,
		reason, amount, status,
		dto.OperationToken, dto.CreatedAt,
	)
}
