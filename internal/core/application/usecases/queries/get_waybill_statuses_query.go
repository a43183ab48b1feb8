package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetWaybillStatusesQueryIsNotConstructed = errors.New(
	"GetWaybillStatusesQuery must be created via NewGetWaybillStatusesQuery constructor",
)

// GetWaybillStatusesQuery looks up several tracking numbers at once, typically pasted
// from a barcode scanner one per line.
type GetWaybillStatusesQuery struct {
	trackingNumbers []string

	guard guard.ConstructorGuard
}

// NewGetWaybillStatusesQuery splits scanner input into entries; blank lines are dropped.
// Entries are validated per item by the handler so one bad line does not hide the rest.
func NewGetWaybillStatusesQuery(scannerInput string) (GetWaybillStatusesQuery, error) {
	entries := kernel.SplitScannerInput(scannerInput)
	if len(entries) == 0 {
		return GetWaybillStatusesQuery{}, errs.NewValueIsRequiredError("tracking numbers")
	}

	return GetWaybillStatusesQuery{
		trackingNumbers: entries,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q GetWaybillStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetWaybillStatusesQueryIsNotConstructed)
}

func (q GetWaybillStatusesQuery) TrackingNumbers() []string {
	return append([]string(nil), q.trackingNumbers...)
}
