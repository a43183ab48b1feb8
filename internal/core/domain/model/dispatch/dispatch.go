package dispatch

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrDispatchIsNotConstructed is returned when using a Dispatch that was not created via
// NewDispatch or RestoreDispatch.
var ErrDispatchIsNotConstructed = errors.New("Dispatch must be created via NewDispatch constructor")

// Dispatch is the record that a courier took a waybill out for delivery.
type Dispatch struct {
	trackingNumber kernel.TrackingNumber
	courier        kernel.Name
	// zone is the courier's zone at dispatch time
	zone         kernel.Name
	dispatchedAt time.Time

	guard guard.ConstructorGuard
}

// NewDispatch creates a dispatch of trackingNumber by c at the given instant, snapshotting
// the courier's current zone.
func NewDispatch(trackingNumber kernel.TrackingNumber, c *courier.Courier, at time.Time) (*Dispatch, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return RestoreDispatch(trackingNumber, c.Name(), c.Zone(), at)
}

// RestoreDispatch rebuilds a Dispatch loaded from storage.
func RestoreDispatch(
	trackingNumber kernel.TrackingNumber,
	courierName, zoneName kernel.Name,
	dispatchedAt time.Time,
) (*Dispatch, error) {
	d := &Dispatch{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setTrackingNumber(trackingNumber),
		d.setCourier(courierName),
		d.setZone(zoneName),
		d.setDispatchedAt(dispatchedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Dispatch) Validate() error {
	if d == nil {
		return ErrDispatchIsNotConstructed
	}
	return d.guard.Validate(ErrDispatchIsNotConstructed)
}

func (d *Dispatch) TrackingNumber() kernel.TrackingNumber {
	return d.trackingNumber
}

func (d *Dispatch) Courier() kernel.Name {
	return d.courier
}

// Zone returns the zone snapshot taken when the dispatch was made.
func (d *Dispatch) Zone() kernel.Name {
	return d.zone
}

func (d *Dispatch) DispatchedAt() time.Time {
	return d.dispatchedAt
}

func (d *Dispatch) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	d.trackingNumber = tn
	return nil
}

func (d *Dispatch) setCourier(name kernel.Name) error {
	if name.IsZero() {
		return errs.NewValueIsRequiredError("courier")
	}
	d.courier = name
	return nil
}

func (d *Dispatch) setZone(name kernel.Name) error {
	if name.IsZero() {
		return errs.NewValueIsRequiredError("zone")
	}
	d.zone = name
	return nil
}

func (d *Dispatch) setDispatchedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("dispatched at")
	}
	d.dispatchedAt = at.UTC()
	return nil
}
