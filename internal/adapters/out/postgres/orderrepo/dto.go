// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The package snapshot is flattened into the row; version is the optimistic
// concurrency token checked by conditional updates.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID uuid.UUID `gorm:"type:uuid;index"`
	ProviderID  uuid.UUID `gorm:"type:uuid;index"`

	Status        string `gorm:"index"`
	PaymentStatus string

	ConfirmationDeadline *time.Time
	DeliveryDeadline     *time.Time

	RevisionCount    int
	RevisionLimit    int
	DeliveryTimeDays int

	PriceAmount   int64
	PriceCurrency string

	CreatedAt   time.Time
	CompletedAt *time.Time

	Version int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// RevisionRequestDTO represents the database structure for revision requests.
// Rows are append-only: a revision request is never edited or deleted.
type RevisionRequestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Message   string
	CreatedAt time.Time
}

// TableName specifies the database table name for revision requests.
func (RevisionRequestDTO) TableName() string {
	return "revision_requests"
}

// fromDomain converts an order domain aggregate to its database representation.
// The stored version is the aggregate's loaded version; the conditional update
// bumps it on write.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		RequesterID:          aggregate.RequesterID().Bytes(),
		ProviderID:           aggregate.ProviderID().Bytes(),
		Status:               aggregate.Status().String(),
		PaymentStatus:        aggregate.PaymentStatus().String(),
		ConfirmationDeadline: aggregate.ConfirmationDeadline(),
		DeliveryDeadline:     aggregate.DeliveryDeadline(),
		RevisionCount:        aggregate.RevisionCount(),
		RevisionLimit:        aggregate.Snapshot().RevisionLimit(),
		DeliveryTimeDays:     aggregate.Snapshot().DeliveryTimeDays(),
		PriceAmount:          aggregate.Snapshot().Price().Amount(),
		PriceCurrency:        aggregate.Snapshot().Price().Currency(),
		CreatedAt:            aggregate.CreatedAt(),
		CompletedAt:          aggregate.CompletedAt(),
		Version:              aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	snapshot, err := order.NewPackageSnapshot(dto.RevisionLimit, dto.DeliveryTimeDays, price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, requesterID, providerID,
		status, paymentStatus,
		dto.ConfirmationDeadline, dto.DeliveryDeadline,
		dto.CreatedAt, dto.CompletedAt,
		dto.RevisionCount,
		snapshot,
		dto.Version,
	)
}

// revisionFromDomain converts a revision request to its database representation.
func revisionFromDomain(revision *order.RevisionRequest) RevisionRequestDTO {
	return RevisionRequestDTO{
		ID:        revision.ID().Bytes(),
		OrderID:   revision.OrderID().Bytes(),
		Message:   revision.Message(),
		CreatedAt: revision.CreatedAt(),
	}
}

// revisionToDomain converts a database DTO to a revision request.
func revisionToDomain(dto RevisionRequestDTO) (*order.RevisionRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreRevisionRequest(id, orderID, dto.Message, dto.CreatedAt)
}
