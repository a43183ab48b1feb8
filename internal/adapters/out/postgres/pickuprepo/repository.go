package pickuprepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickupRepository implements PickupRepository using GORM.
type GormPickupRepository struct {
	db *gorm.DB
}

// NewGormPickupRepository creates a new GORM pickup repository.
func NewGormPickupRepository(db *gorm.DB) *GormPickupRepository {
	return &GormPickupRepository{db: db}
}

// Add saves a new pickup to the database.
func (r *GormPickupRepository) Add(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Omit("CreatedAt").Create(&dto).Error
}

// Update saves the editable fields of an existing pickup.
func (r *GormPickupRepository) Update(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// A map is used so an emptied notes field is written too
	result := r.db.WithContext(ctx).
		Model(&PickupDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"internal_number": dto.InternalNumber,
			"date":            dto.Date,
			"notes":           dto.Notes,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pickup", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a pickup by ID.
func (r *GormPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every pickup, newest date first. Pickups of the same date are ordered
// by registration, newest first.
func (r *GormPickupRepository) GetAll(ctx context.Context) ([]*pickup.Pickup, error) {
	var dtos []PickupDTO
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	pickups := make([]*pickup.Pickup, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pickups = append(pickups, p)
	}

	return pickups, nil
}
