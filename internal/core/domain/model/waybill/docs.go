// Package waybill provides the Waybill aggregate root ("guía") and the Status state
// machine shared by every lifecycle operation.
//
// The package includes:
//   - Waybill: shipment details keyed by tracking number
//   - Status: the externally observed lifecycle state of a tracking number
//
// Key business rules:
//   - Waybills are created only by registration (bulk import), never as a side effect
//     of a dispatch
//   - Every descriptive field (sender, recipient, address, city) is required
//   - Status is derived from which records exist, it is never stored
package waybill
