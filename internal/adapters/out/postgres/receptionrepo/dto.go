// Package receptionrepo persists reception records with GORM.
package receptionrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reception"
)

// ReceptionDTO represents a row of the receptions table. Kind is stored by name.
type ReceptionDTO struct {
	TrackingNumber string    `gorm:"type:varchar(255);primaryKey"`
	Kind           string    `gorm:"type:varchar(16);not null"`
	Reason         string    `gorm:"type:varchar(255);not null;default:''"`
	ReceivedAt     time.Time `gorm:"type:timestamptz;not null"`
}

func (ReceptionDTO) TableName() string {
	return "receptions"
}

func fromDomain(r *reception.Reception) ReceptionDTO {
	return ReceptionDTO{
		TrackingNumber: r.TrackingNumber().String(),
		Kind:           r.Kind().String(),
		Reason:         r.Reason(),
		ReceivedAt:     r.ReceivedAt(),
	}
}

func toDomain(dto ReceptionDTO) (*reception.Reception, error) {
	tn, err := kernel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}
	kind, err := reception.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	return reception.RestoreReception(tn, kind, dto.Reason, dto.ReceivedAt)
}
