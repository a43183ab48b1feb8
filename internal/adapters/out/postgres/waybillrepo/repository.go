package waybillrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/waybill"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findExistingChunk bounds the IN list of one lookup well below the PostgreSQL parameter limit.
const findExistingChunk = 1000

// GormWaybillRepository implements WaybillRepository using GORM.
type GormWaybillRepository struct {
	db *gorm.DB
}

// NewGormWaybillRepository creates a new GORM waybill repository.
func NewGormWaybillRepository(db *gorm.DB) *GormWaybillRepository {
	return &GormWaybillRepository{db: db}
}

// AddIfAbsent inserts the waybill with ON CONFLICT DO NOTHING, so an existing registration
// is left untouched.
func (r *GormWaybillRepository) AddIfAbsent(ctx context.Context, aggregate *waybill.Waybill) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("CreatedAt").
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// Get retrieves a waybill by tracking number.
func (r *GormWaybillRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*waybill.Waybill, error) {
	if err := tn.Validate(); err != nil {
		return nil, err
	}

	var dto WaybillDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", tn.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("waybill", tn.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindExisting returns the registered subset of tns.
func (r *GormWaybillRepository) FindExisting(
	ctx context.Context,
	tns []kernel.TrackingNumber,
) ([]kernel.TrackingNumber, error) {
	found := make([]kernel.TrackingNumber, 0, len(tns))
	for start := 0; start < len(tns); start += findExistingChunk {
		end := min(start+findExistingChunk, len(tns))

		values := make([]string, 0, end-start)
		for _, tn := range tns[start:end] {
			values = append(values, tn.String())
		}

		var existing []string
		if err := r.db.WithContext(ctx).
			Model(&WaybillDTO{}).
			Where("tracking_number IN ?", values).
			Pluck("tracking_number", &existing).Error; err != nil {
			return nil, err
		}

		for _, value := range existing {
			tn, err := kernel.NewTrackingNumber(value)
			if err != nil {
				return nil, err
			}
			found = append(found, tn)
		}
	}

	return found, nil
}
