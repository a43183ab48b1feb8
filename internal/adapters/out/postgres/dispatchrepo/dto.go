// Package dispatchrepo persists dispatch records with GORM.
package dispatchrepo

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
)

// DispatchDTO represents a row of the dispatches table. Zone is the snapshot of the
// courier's zone taken at dispatch time.
type DispatchDTO struct {
	TrackingNumber string    `gorm:"type:varchar(255);primaryKey"`
	Courier        string    `gorm:"type:varchar(255);not null"`
	Zone           string    `gorm:"type:varchar(255);not null"`
	DispatchedAt   time.Time `gorm:"type:timestamptz;not null"`
}

func (DispatchDTO) TableName() string {
	return "dispatches"
}

func fromDomain(d *dispatch.Dispatch) DispatchDTO {
	return DispatchDTO{
		TrackingNumber: d.TrackingNumber().String(),
		Courier:        d.Courier().String(),
		Zone:           d.Zone().String(),
		DispatchedAt:   d.DispatchedAt(),
	}
}

func toDomain(dto DispatchDTO) (*dispatch.Dispatch, error) {
	tn, tnErr := kernel.NewTrackingNumber(dto.TrackingNumber)
	courierName, courierErr := kernel.NewName("courier", dto.Courier)
	zoneName, zoneErr := kernel.NewName("zone", dto.Zone)
	if err := errors.Join(tnErr, courierErr, zoneErr); err != nil {
		return nil, err
	}

	return dispatch.RestoreDispatch(tn, courierName, zoneName, dto.DispatchedAt)
}

func toDomainAll(dtos []DispatchDTO) ([]*dispatch.Dispatch, error) {
	dispatches := make([]*dispatch.Dispatch, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dispatches = append(dispatches, d)
	}
	return dispatches, nil
}
