package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
)

// StatusCache stores resolved snapshots between writes. Implementations must treat
// failures as misses: a cache outage never fails a status lookup.
type StatusCache interface {
	// Get returns the cached snapshot of trackingNumber, ok is false on a miss.
	Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (snapshot services.Snapshot, ok bool)

	// Set caches a snapshot.
	Set(ctx context.Context, snapshot services.Snapshot)

	// Invalidate drops the snapshots of trackingNumbers after a write changed them.
	Invalidate(ctx context.Context, trackingNumbers ...kernel.TrackingNumber)
}
