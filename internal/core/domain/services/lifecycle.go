package services

import (
	"time"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/core/domain/model/waybill"
)

// Snapshot is the read-only view of a tracking number returned by status lookups.
//
// Courier, Zone and DispatchedAt are filled whenever a dispatch exists, including for
// received waybills. Reason is only set for returned waybills.
type Snapshot struct {
	TrackingNumber kernel.TrackingNumber
	Status         waybill.Status
	Reason         string
	Courier        kernel.Name
	Zone           kernel.Name
	DispatchedAt   *time.Time
}

// Lifecycle is a domain service enforcing the transition rules of a tracking number:
//
//	UNKNOWN → PENDING → DISPATCHED → DELIVERED | RETURNED
//
// Every method takes the records currently stored for one tracking number. A nil pointer
// means "no such record". The caller must load them inside the same transaction that
// persists the result and hold the per-tracking-number lock while doing so.
//
// Example usage:
//
//	lifecycle := services.NewLifecycle()
//	d, err := lifecycle.Dispatch(tn, w, existingDispatch, existingReception, c, now)
//	if errors.Is(err, services.ErrAlreadyDispatched) {
//	    // Report the conflict, do not retry
//	}
type Lifecycle struct{}

// NewLifecycle creates a Lifecycle instance.
func NewLifecycle() Lifecycle {
	return Lifecycle{}
}

// Dispatch decides whether tn can be handed to courier c.
//
// Parameters:
//   - tn: the tracking number being dispatched
//   - w: the registered waybill, nil if none
//   - d: the existing dispatch, nil if none
//   - r: the existing reception, nil if none
//   - c: the resolved courier, nil if the name did not match any courier
//   - courierName: the requested name, reported when c is nil
//   - at: the dispatch instant
//
// Returns:
//   - *dispatch.Dispatch: the new record, zone copied from the courier
//   - error: checked in order NotFound, AlreadyReceived, AlreadyDispatched, UnknownCourier
func (Lifecycle) Dispatch(
	tn kernel.TrackingNumber,
	w *waybill.Waybill,
	d *dispatch.Dispatch,
	r *reception.Reception,
	c *courier.Courier,
	courierName string,
	at time.Time,
) (*dispatch.Dispatch, error) {
	if w == nil {
		return nil, NewWaybillNotFoundError(tn)
	}
	if r != nil {
		return nil, NewAlreadyReceivedError(tn, r.Kind())
	}
	if d != nil {
		return nil, NewAlreadyDispatchedError(tn, d.Courier())
	}
	if c == nil {
		return nil, NewUnknownCourierError(courierName)
	}

	return dispatch.NewDispatch(tn, c, at)
}

// Receive decides whether tn can be closed with the given outcome.
//
// The checks run in order NotFound, NotDispatchedYet, AlreadyReceived. A RETURNED
// reception without a reason fails as invalid input; a DELIVERED reception drops any
// supplied reason.
func (Lifecycle) Receive(
	tn kernel.TrackingNumber,
	w *waybill.Waybill,
	d *dispatch.Dispatch,
	r *reception.Reception,
	kind reception.Kind,
	reason string,
	at time.Time,
) (*reception.Reception, error) {
	if w == nil {
		return nil, NewWaybillNotFoundError(tn)
	}
	if d == nil {
		return nil, newNotDispatchedYetError(tn)
	}
	if r != nil {
		return nil, NewAlreadyReceivedError(tn, r.Kind())
	}

	return reception.NewReception(tn, kind, reason, at)
}

// Resolve derives the status of tn from its stored records: waybill existence first, then
// reception, then dispatch, otherwise pending.
func (Lifecycle) Resolve(
	tn kernel.TrackingNumber,
	w *waybill.Waybill,
	d *dispatch.Dispatch,
	r *reception.Reception,
) Snapshot {
	s := Snapshot{TrackingNumber: tn, Status: waybill.Unknown}
	if w == nil {
		return s
	}

	if d != nil {
		at := d.DispatchedAt()
		s.Courier = d.Courier()
		s.Zone = d.Zone()
		s.DispatchedAt = &at
	}

	switch {
	case r != nil && r.Kind() == reception.Delivered:
		s.Status = waybill.Delivered
	case r != nil && r.Kind() == reception.Returned:
		s.Status = waybill.Returned
		s.Reason = r.Reason()
	case d != nil:
		s.Status = waybill.Dispatched
	default:
		s.Status = waybill.Pending
	}

	return s
}
