package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// SettlementRow is the amount owed to one courier over a date range.
type SettlementRow struct {
	Courier kernel.Name
	Count   int64
	Total   kernel.Money
}

// SettlementReader aggregates dispatches per courier.
type SettlementReader interface {
	// Settle groups the dispatches made inside period by courier. Total is the sum of the
	// current rate of the zone stored on each dispatch. When courier is non-nil only that
	// courier is considered. Rows are ordered by courier name; couriers without dispatches
	// in the period are omitted.
	Settle(ctx context.Context, courier *kernel.Name, period kernel.DateRange) ([]SettlementRow, error)
}
