package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/pkg/guard"
)

var ErrReceiveWaybillCommandIsNotConstructed = errors.New(
	"ReceiveWaybillCommand must be created via NewReceiveWaybillCommand constructor",
)

// ReceiveWaybillCommand closes a dispatched waybill as delivered or returned.
//
// The reason rules are applied here, before any storage access: a RETURNED command without
// a reason is rejected, a DELIVERED command silently drops its reason.
type ReceiveWaybillCommand struct {
	trackingNumber kernel.TrackingNumber
	kind           reception.Kind
	reason         string

	guard guard.ConstructorGuard
}

func NewReceiveWaybillCommand(trackingNumber, kind, reason string) (ReceiveWaybillCommand, error) {
	tn, tnErr := kernel.NewTrackingNumber(trackingNumber)
	k, kindErr := reception.ParseKind(kind)
	if err := errors.Join(tnErr, kindErr); err != nil {
		return ReceiveWaybillCommand{}, err
	}

	normalized, err := reception.NormalizeReason(k, reason)
	if err != nil {
		return ReceiveWaybillCommand{}, err
	}

	return ReceiveWaybillCommand{
		trackingNumber: tn,
		kind:           k,
		reason:         normalized,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ReceiveWaybillCommand) Validate() error {
	return c.guard.Validate(ErrReceiveWaybillCommandIsNotConstructed)
}

func (c ReceiveWaybillCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

func (c ReceiveWaybillCommand) Kind() reception.Kind {
	return c.kind
}

// Reason is empty for DELIVERED.
func (c ReceiveWaybillCommand) Reason() string {
	return c.reason
}
