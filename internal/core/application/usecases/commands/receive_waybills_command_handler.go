package commands

import (
	"context"
)

// ReceiveWaybillsCommandHandler runs ReceiveWaybillCommandHandler once per item and
// collects the outcomes.
type ReceiveWaybillsCommandHandler struct {
	single ReceiveWaybillCommandHandler
}

func NewReceiveWaybillsCommandHandler(single ReceiveWaybillCommandHandler) ReceiveWaybillsCommandHandler {
	return ReceiveWaybillsCommandHandler{single: single}
}

// Handle returns an error only for an unconstructed command.
func (h *ReceiveWaybillsCommandHandler) Handle(ctx context.Context, cmd ReceiveWaybillsCommand) (BatchResult, error) {
	var result BatchResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	for _, item := range cmd.Items() {
		itemCmd, err := NewReceiveWaybillCommand(item.TrackingNumber, item.Kind, item.Reason)
		if err != nil {
			result.fail(item.TrackingNumber, err)
			continue
		}

		if _, err = h.single.Handle(ctx, itemCmd); err != nil {
			result.fail(itemCmd.TrackingNumber().String(), err)
			continue
		}

		result.succeed(itemCmd.TrackingNumber().String())
	}

	return result, nil
}
