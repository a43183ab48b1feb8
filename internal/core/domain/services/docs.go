// Package services provides the domain services of the waybill lifecycle. They hold the
// rules that span several aggregates: whether a waybill may be dispatched or received
// given the records that already exist for it, and how its observable status is derived.
//
// The package includes:
//   - Lifecycle: transition rules and status resolution per tracking number
//   - Classify: maps any error to the FailureKind reported to callers
//
// Domain services are pure: callers load the aggregates, pass them in, and persist
// whatever the service returns.
package services
