package receptionrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerrs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReceptionRepository implements ReceptionRepository using GORM.
type GormReceptionRepository struct {
	db *gorm.DB
}

// NewGormReceptionRepository creates a new GORM reception repository.
func NewGormReceptionRepository(db *gorm.DB) *GormReceptionRepository {
	return &GormReceptionRepository{db: db}
}

// Add inserts a reception. The primary key is the storage backstop against closing one
// waybill twice.
func (r *GormReceptionRepository) Add(ctx context.Context, rec *reception.Reception) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rec)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return services.NewAlreadyReceivedError(rec.TrackingNumber(), reception.KindUnknown)
		}
		return err
	}

	return nil
}

// Get retrieves the reception of a tracking number.
func (r *GormReceptionRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*reception.Reception, error) {
	var dto ReceptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", tn.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reception", tn.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
