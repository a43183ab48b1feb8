package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// DispatchWaybillsCommandHandler applies a dispatch to every tracking number of a batch.
// Each item runs in its own transaction and a failure is recorded, never propagated, so
// the batch always runs to the end.
type DispatchWaybillsCommandHandler struct {
	single DispatchWaybillCommandHandler
}

func NewDispatchWaybillsCommandHandler(single DispatchWaybillCommandHandler) DispatchWaybillsCommandHandler {
	return DispatchWaybillsCommandHandler{single: single}
}

// Handle returns an error only for an unconstructed command.
func (h *DispatchWaybillsCommandHandler) Handle(ctx context.Context, cmd DispatchWaybillsCommand) (BatchResult, error) {
	var result BatchResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	for _, raw := range cmd.TrackingNumbers() {
		tn, err := kernel.NewTrackingNumber(raw)
		if err != nil {
			result.fail(raw, err)
			continue
		}

		if _, err = h.single.dispatch(ctx, tn, cmd.Courier()); err != nil {
			result.fail(tn.String(), err)
			continue
		}

		result.succeed(tn.String())
	}

	return result, nil
}
