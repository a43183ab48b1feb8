package queries

import (
	"time"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
)

// WaybillStatusResponse is the status snapshot of one tracking number.
type WaybillStatusResponse struct {
	TrackingNumber string
	Status         string
	Reason         string
	Courier        string
	Zone           string
	DispatchedAt   *time.Time
}

func newWaybillStatusResponse(s services.Snapshot) WaybillStatusResponse {
	return WaybillStatusResponse{
		TrackingNumber: s.TrackingNumber.String(),
		Status:         s.Status.String(),
		Reason:         s.Reason,
		Courier:        s.Courier.String(),
		Zone:           s.Zone.String(),
		DispatchedAt:   s.DispatchedAt,
	}
}

type ZoneResponse struct {
	Name string
	Rate kernel.Money
}

func newZoneResponse(z *zone.Zone) ZoneResponse {
	return ZoneResponse{Name: z.Name().String(), Rate: z.Rate()}
}

type CourierResponse struct {
	Name string
	Zone string
}

func newCourierResponse(c *courier.Courier) CourierResponse {
	return CourierResponse{Name: c.Name().String(), Zone: c.Zone().String()}
}

// DispatchResponse describes a dispatch with the zone it was made in.
type DispatchResponse struct {
	TrackingNumber string
	Courier        string
	Zone           string
	DispatchedAt   time.Time
}

func newDispatchResponse(d *dispatch.Dispatch) DispatchResponse {
	return DispatchResponse{
		TrackingNumber: d.TrackingNumber().String(),
		Courier:        d.Courier().String(),
		Zone:           d.Zone().String(),
		DispatchedAt:   d.DispatchedAt(),
	}
}

type PickupResponse struct {
	ID             kernel.UUID
	InternalNumber string
	Date           time.Time
	Notes          string
}

func newPickupResponse(p *pickup.Pickup) PickupResponse {
	return PickupResponse{
		ID:             p.ID(),
		InternalNumber: p.InternalNumber(),
		Date:           p.Date(),
		Notes:          p.Notes(),
	}
}
