// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"errors"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The zone column references zones.name.
type CourierDTO struct {
	Name string `gorm:"type:varchar(255);primaryKey"`
	Zone string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		Name: c.Name().String(),
		Zone: c.Zone().String(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	name, nameErr := kernel.NewName("courier", dto.Name)
	zone, zoneErr := kernel.NewName("zone", dto.Zone)
	if err := errors.Join(nameErr, zoneErr); err != nil {
		return nil, err
	}

	return courier.RestoreCourier(name, zone)
}
