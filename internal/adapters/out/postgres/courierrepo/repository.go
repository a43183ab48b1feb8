package courierrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerrs"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier to the database.
// A taken name fails with errs.ObjectAlreadyExistsError and an unknown zone with
// errs.ObjectNotFoundError.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err, dto)
	}

	return nil
}

// Update saves the zone of an existing courier.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("name = ?", dto.Name).
		Update("zone", dto.Zone)
	if result.Error != nil {
		return translate(result.Error, dto)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", dto.Name)
	}

	return nil
}

// Get retrieves a courier by name.
func (r *GormCourierRepository) Get(ctx context.Context, name kernel.Name) (*courier.Courier, error) {
	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", name.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every courier ordered by name.
//
// Example:
//
//	couriers, err := repo.GetAll(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to list couriers: %w", err)
//	}
//	for _, c := range couriers {
//		fmt.Printf("%s works %s\n", c.Name(), c.Zone())
//	}
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

func translate(err error, dto CourierDTO) error {
	switch {
	case pgerrs.IsUniqueViolation(err):
		return errs.NewObjectAlreadyExistsErrorWithCause("courier", dto.Name, err)
	case pgerrs.IsForeignKeyViolation(err):
		return errs.NewObjectNotFoundErrorWithCause("zone", dto.Zone, err)
	default:
		return err
	}
}
