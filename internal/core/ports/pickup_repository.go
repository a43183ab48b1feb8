package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
)

// PickupRepository defines the persistence contract for pickup log entries.
type PickupRepository interface {
	Add(ctx context.Context, pickup *pickup.Pickup) error
	Update(ctx context.Context, pickup *pickup.Pickup) error
	Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error)

	// GetAll returns every pickup, newest date first.
	GetAll(ctx context.Context) ([]*pickup.Pickup, error)
}
