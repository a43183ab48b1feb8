package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reception"
)

// ReceptionRepository defines the persistence contract for reception records.
type ReceptionRepository interface {
	// Add inserts a reception. A second reception for the same tracking number fails with
	// services.AlreadyReceivedError.
	Add(ctx context.Context, reception *reception.Reception) error

	// Get retrieves the reception of a tracking number.
	Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*reception.Reception, error)
}
