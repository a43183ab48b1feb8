package dispatchrepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/pgerrs"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDispatchRepository implements DispatchRepository using GORM.
type GormDispatchRepository struct {
	db *gorm.DB
}

// NewGormDispatchRepository creates a new GORM dispatch repository.
func NewGormDispatchRepository(db *gorm.DB) *GormDispatchRepository {
	return &GormDispatchRepository{db: db}
}

// Add inserts a dispatch. The primary key on tracking_number rejects a second dispatch of
// the same waybill even when a concurrent writer passed the lifecycle checks first.
func (r *GormDispatchRepository) Add(ctx context.Context, d *dispatch.Dispatch) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return services.NewAlreadyDispatchedError(d.TrackingNumber(), kernel.Name{})
		}
		return err
	}

	return nil
}

// Get retrieves the dispatch of a tracking number.
func (r *GormDispatchRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*dispatch.Dispatch, error) {
	var dto DispatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", tn.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispatch", tn.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every dispatch, newest first.
func (r *GormDispatchRepository) GetAll(ctx context.Context) ([]*dispatch.Dispatch, error) {
	var dtos []DispatchDTO
	if err := r.db.WithContext(ctx).
		Order("dispatched_at DESC").
		Order("tracking_number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetUnreceivedBefore retrieves dispatches older than cutoff without a reception, oldest first.
func (r *GormDispatchRepository) GetUnreceivedBefore(ctx context.Context, cutoff time.Time) ([]*dispatch.Dispatch, error) {
	var dtos []DispatchDTO
	if err := r.db.WithContext(ctx).
		Table("dispatches").
		Select("dispatches.*").
		Joins("LEFT JOIN receptions ON receptions.tracking_number = dispatches.tracking_number").
		Where("receptions.tracking_number IS NULL").
		Where("dispatches.dispatched_at < ?", cutoff.UTC()).
		Order("dispatches.dispatched_at").
		Order("dispatches.tracking_number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}
