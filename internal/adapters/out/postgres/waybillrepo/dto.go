// Package waybillrepo persists registered waybills with GORM.
package waybillrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/waybill"
)

// WaybillDTO represents a row of the waybills table. CreatedAt is filled by the database.
type WaybillDTO struct {
	TrackingNumber string    `gorm:"type:varchar(255);primaryKey"`
	Sender         string    `gorm:"type:varchar(255);not null"`
	Recipient      string    `gorm:"type:varchar(255);not null"`
	Address        string    `gorm:"type:varchar(255);not null"`
	City           string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

func (WaybillDTO) TableName() string {
	return "waybills"
}

func fromDomain(w *waybill.Waybill) WaybillDTO {
	return WaybillDTO{
		TrackingNumber: w.TrackingNumber().String(),
		Sender:         w.Sender(),
		Recipient:      w.Recipient(),
		Address:        w.Address(),
		City:           w.City(),
	}
}

func toDomain(dto WaybillDTO) (*waybill.Waybill, error) {
	tn, err := kernel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}
	return waybill.RestoreWaybill(tn, dto.Sender, dto.Recipient, dto.Address, dto.City)
}
