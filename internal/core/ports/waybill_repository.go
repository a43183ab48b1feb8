package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/waybill"
)

// WaybillRepository defines the persistence contract for waybill aggregates.
type WaybillRepository interface {
	// AddIfAbsent inserts the waybill unless its tracking number is already registered.
	// An existing waybill is never overwritten; inserted reports which case happened.
	AddIfAbsent(ctx context.Context, waybill *waybill.Waybill) (inserted bool, err error)

	// Get retrieves a waybill by tracking number.
	Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*waybill.Waybill, error)

	// FindExisting returns the subset of trackingNumbers that are registered, in no
	// particular order.
	FindExisting(ctx context.Context, trackingNumbers []kernel.TrackingNumber) ([]kernel.TrackingNumber, error)
}
