// Package ports defines the persistence contracts of the waybill lifecycle. Every storage
// backend implements the same interfaces, so the application layer never depends on a
// concrete database.
//
// Lookups by key return errs.ObjectNotFoundError on a miss. Inserts that collide with a
// unique key return errs.ObjectAlreadyExistsError, except for dispatches and receptions
// which report the lifecycle conflict errors of the services package.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier. The courier's zone must already exist.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists a zone reassignment of an existing courier.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by its unique name.
	Get(ctx context.Context, name kernel.Name) (*courier.Courier, error)

	// GetAll returns every courier ordered by name.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}
