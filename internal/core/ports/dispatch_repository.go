package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
)

// DispatchRepository defines the persistence contract for dispatch records. Dispatches
// are append-only: there is no Update.
type DispatchRepository interface {
	// Add inserts a dispatch. A second dispatch for the same tracking number fails with
	// services.AlreadyDispatchedError, whether detected by a prior read or by the unique
	// constraint of the store.
	Add(ctx context.Context, dispatch *dispatch.Dispatch) error

	// Get retrieves the dispatch of a tracking number.
	Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*dispatch.Dispatch, error)

	// GetAll returns every dispatch, newest first.
	GetAll(ctx context.Context) ([]*dispatch.Dispatch, error)

	// GetUnreceivedBefore returns dispatches made before cutoff that have no reception,
	// oldest first.
	GetUnreceivedBefore(ctx context.Context, cutoff time.Time) ([]*dispatch.Dispatch, error)
}
