package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDispatchWaybillsCommandIsNotConstructed = errors.New(
	"DispatchWaybillsCommand must be created via NewDispatchWaybillsCommand constructor",
)

// DispatchWaybillsCommand hands several waybills to the same courier. Tracking numbers
// are kept as typed so that malformed entries can be reported per item.
type DispatchWaybillsCommand struct {
	trackingNumbers []string
	courier         kernel.Name

	guard guard.ConstructorGuard
}

// NewDispatchWaybillsCommand requires a courier and at least one tracking number.
// Scanner input can be turned into trackingNumbers with kernel.SplitScannerInput.
func NewDispatchWaybillsCommand(trackingNumbers []string, courier string) (DispatchWaybillsCommand, error) {
	courierName, err := kernel.NewName("courier", courier)
	if err != nil {
		return DispatchWaybillsCommand{}, err
	}
	if len(trackingNumbers) == 0 {
		return DispatchWaybillsCommand{}, errs.NewValueIsRequiredError("tracking numbers")
	}

	return DispatchWaybillsCommand{
		trackingNumbers: append([]string(nil), trackingNumbers...),
		courier:         courierName,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchWaybillsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchWaybillsCommandIsNotConstructed)
}

func (c DispatchWaybillsCommand) TrackingNumbers() []string {
	return c.trackingNumbers
}

func (c DispatchWaybillsCommand) Courier() kernel.Name {
	return c.courier
}
