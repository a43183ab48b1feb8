// Package courier provides the Courier aggregate for the waybill lifecycle model.
//
// A courier is identified by a unique name and belongs to exactly one zone at a time.
// Dispatches copy the courier's zone when they are created, so reassigning a courier
// to another zone never changes the zone of dispatches made before the move.
//
// Key business rules:
//   - Couriers must have a non-empty unique name
//   - Couriers must reference a zone; the zone's existence is checked by the
//     registration use case, which has access to the zone registry
//   - Reassignment replaces the current zone only
package courier
