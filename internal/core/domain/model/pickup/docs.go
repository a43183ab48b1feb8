// Package pickup provides the Pickup aggregate: a freestanding log entry recording that
// parcels were collected from a sender ("recogida").
//
// Pickups are not part of the waybill lifecycle. They may optionally reference a waybill
// through their internal number; whether that reference must exist is decided by the
// application layer.
package pickup
