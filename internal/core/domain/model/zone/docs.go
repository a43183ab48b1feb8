// Package zone provides the Zone aggregate: a service area with the rate paid to a
// courier for every waybill dispatched inside it.
//
// Key business rules:
//   - Zones are identified by a unique, normalized name
//   - The rate is a non-negative amount and may be changed after registration
//   - Zones are never deleted; dispatches keep referring to them by name
package zone
