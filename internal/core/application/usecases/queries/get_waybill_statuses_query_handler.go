package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
)

// WaybillStatusesItem is one line of a multi status lookup. Failure is set instead of
// Status when the line is not a valid tracking number.
type WaybillStatusesItem struct {
	Input   string
	Status  *WaybillStatusResponse
	Failure services.FailureKind
	Err     error
}

type GetWaybillStatusesQueryHandler struct {
	single GetWaybillStatusQueryHandler
}

func NewGetWaybillStatusesQueryHandler(single GetWaybillStatusQueryHandler) GetWaybillStatusesQueryHandler {
	return GetWaybillStatusesQueryHandler{single: single}
}

// Handle returns one item per input line in input order. A storage failure aborts the
// whole lookup.
func (h GetWaybillStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetWaybillStatusesQuery,
) ([]WaybillStatusesItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	inputs := query.TrackingNumbers()
	items := make([]WaybillStatusesItem, 0, len(inputs))
	for _, input := range inputs {
		tn, err := kernel.NewTrackingNumber(input)
		if err != nil {
			items = append(items, WaybillStatusesItem{Input: input, Failure: services.Classify(err), Err: err})
			continue
		}

		snapshot, err := h.single.resolve(ctx, tn)
		if err != nil {
			return nil, err
		}
		status := newWaybillStatusResponse(snapshot)
		items = append(items, WaybillStatusesItem{Input: input, Status: &status})
	}

	return items, nil
}
