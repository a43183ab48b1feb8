// Package zonerepo persists zone aggregates with GORM.
package zonerepo

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
)

// ZoneDTO represents the database structure for persisting zones. Rates are stored in
// minor units.
type ZoneDTO struct {
	Name      string `gorm:"type:varchar(255);primaryKey"`
	RateMinor int64  `gorm:"type:bigint;not null"`
}

func (ZoneDTO) TableName() string {
	return "zones"
}

func fromDomain(z *zone.Zone) ZoneDTO {
	return ZoneDTO{
		Name:      z.Name().String(),
		RateMinor: z.Rate().Minor(),
	}
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	name, nameErr := kernel.NewName("zone", dto.Name)
	rate, rateErr := kernel.NewMoneyFromMinor(dto.RateMinor)
	if err := errors.Join(nameErr, rateErr); err != nil {
		return nil, err
	}
	return zone.RestoreZone(name, rate)
}
