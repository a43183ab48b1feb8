// Package pickuprepo persists the pickup log with GORM.
package pickuprepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"

	"github.com/google/uuid"
)

// PickupDTO represents a row of the pickups table.
type PickupDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	InternalNumber string    `gorm:"type:varchar(100);not null"`
	Date           time.Time `gorm:"type:date;not null"`
	Notes          string    `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt      time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

func (PickupDTO) TableName() string {
	return "pickups"
}

func fromDomain(p *pickup.Pickup) PickupDTO {
	return PickupDTO{
		ID:             p.ID().Bytes(),
		InternalNumber: p.InternalNumber(),
		Date:           p.Date(),
		Notes:          p.Notes(),
	}
}

func toDomain(dto PickupDTO) (*pickup.Pickup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return pickup.RestorePickup(id, dto.InternalNumber, dto.Date, dto.Notes)
}
