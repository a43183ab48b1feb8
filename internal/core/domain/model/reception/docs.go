// Package reception records the outcome of a dispatched waybill ("recepción").
//
// Key business rules:
//   - At most one reception exists per tracking number and it is never edited
//   - A RETURNED reception must carry a non-empty reason
//   - A DELIVERED reception always stores an empty reason, whatever the caller supplied
package reception
