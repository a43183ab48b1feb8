package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/waybill"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// RowFailure reports an imported row that could not be registered. Row is 1-based.
type RowFailure struct {
	Row            int
	TrackingNumber string
	Kind           services.FailureKind
	Err            error
}

// RegisterWaybillsResult reports what happened to every row of an import.
//
// A tracking number that is already registered, or that appears twice in the same import,
// lands in Skipped: registration never overwrites an existing waybill.
type RegisterWaybillsResult struct {
	Inserted []string
	Skipped  []string
	Failed   []RowFailure
}

// RegisterWaybillsCommandHandler inserts imported waybills if absent.
//
// Invalid rows are reported and skipped. Storage errors abort the import and roll back
// every row, so a retry after an outage never produces a half-imported file.
type RegisterWaybillsCommandHandler struct {
	uowFactory WaybillUoWFactory
	cache      ports.StatusCache
}

func NewRegisterWaybillsCommandHandler(uowFactory WaybillUoWFactory, cache ports.StatusCache) RegisterWaybillsCommandHandler {
	return RegisterWaybillsCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (h *RegisterWaybillsCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterWaybillsCommand,
) (RegisterWaybillsResult, error) {
	var result RegisterWaybillsResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	waybillRepo := uow.WaybillRepository()
	inserted := make([]kernel.TrackingNumber, 0, len(cmd.Rows()))
	for i, row := range cmd.Rows() {
		w, err := newWaybill(row)
		if err != nil {
			result.Failed = append(result.Failed, RowFailure{
				Row:            i + 1,
				TrackingNumber: row.TrackingNumber,
				Kind:           services.Classify(err),
				Err:            err,
			})
			continue
		}

		ok, err := waybillRepo.AddIfAbsent(ctx, w)
		if err != nil {
			return RegisterWaybillsResult{}, fmt.Errorf("row %d: %w", i+1, err)
		}

		if ok {
			result.Inserted = append(result.Inserted, w.TrackingNumber().String())
			inserted = append(inserted, w.TrackingNumber())
		} else {
			result.Skipped = append(result.Skipped, w.TrackingNumber().String())
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return RegisterWaybillsResult{}, err
	}

	h.cache.Invalidate(ctx, inserted...)

	return result, nil
}

func newWaybill(row WaybillRow) (*waybill.Waybill, error) {
	tn, err := kernel.NewTrackingNumber(row.TrackingNumber)
	if err != nil {
		return nil, err
	}
	return waybill.NewWaybill(tn, row.Sender, row.Recipient, row.Address, row.City)
}
