package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for zone aggregates.
type ZoneRepository interface {
	// Add persists a new zone.
	Add(ctx context.Context, zone *zone.Zone) error

	// Update persists a rate change of an existing zone.
	Update(ctx context.Context, zone *zone.Zone) error

	// Get retrieves a zone by its unique name.
	Get(ctx context.Context, name kernel.Name) (*zone.Zone, error)

	// GetAll returns every zone ordered by name.
	GetAll(ctx context.Context) ([]*zone.Zone, error)
}
