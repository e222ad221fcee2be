package refundrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/refund"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is the pgx driver's unique constraint
// violation. The gorm postgres driver runs on pgx, so this is the error shape
// a duplicate operation token actually produces.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// GormRefundRequestRepository implements RefundRequestRepository using GORM.
type GormRefundRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRefundRequestRepository creates a new GORM refund request repository.
func NewGormRefundRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRefundRequestRepository {
	return &GormRefundRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new refund request. A unique violation on the operation token
// maps to ports.ErrDuplicateOperation, so resubmitting the same token yields
// exactly one stored request.
func (r *GormRefundRequestRepository) Add(ctx context.Context, aggregate *refund.RefundRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateOperation
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a resolution of an existing refund request.
func (r *GormRefundRequestRepository) Update(ctx context.Context, aggregate *refund.RefundRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RefundRequestDTO{}).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("refund request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a refund request by ID.
func (r *GormRefundRequestRepository) Get(ctx context.Context, id kernel.UUID) (*refund.RefundRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RefundRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("refund request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all refund requests for an order, newest first.
func (r *GormRefundRequestRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*refund.RefundRequest, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RefundRequestDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	requests := make([]*refund.RefundRequest, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
