package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDispatchWaybillCommandIsNotConstructed = errors.New(
	"DispatchWaybillCommand must be created via NewDispatchWaybillCommand constructor",
)

// DispatchWaybillCommand hands one waybill to a courier.
//
// Example:
//
//	cmd, err := NewDispatchWaybillCommand("GU-000123", "Ana")
//	if err != nil {
//	    return err // missing tracking number or courier
//	}
//
//	d, err := handler.Handle(ctx, cmd)
//	switch services.Classify(err) {
//	case services.FailureAlreadyDispatched:
//	    // Already out with a courier
//	}
type DispatchWaybillCommand struct {
	trackingNumber kernel.TrackingNumber
	courier        kernel.Name

	guard guard.ConstructorGuard
}

func NewDispatchWaybillCommand(trackingNumber, courier string) (DispatchWaybillCommand, error) {
	tn, tnErr := kernel.NewTrackingNumber(trackingNumber)
	courierName, courierErr := kernel.NewName("courier", courier)
	if err := errors.Join(tnErr, courierErr); err != nil {
		return DispatchWaybillCommand{}, err
	}

	return DispatchWaybillCommand{
		trackingNumber: tn,
		courier:        courierName,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchWaybillCommand) Validate() error {
	return c.guard.Validate(ErrDispatchWaybillCommandIsNotConstructed)
}

func (c DispatchWaybillCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

func (c DispatchWaybillCommand) Courier() kernel.Name {
	return c.courier
}
