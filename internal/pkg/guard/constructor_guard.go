// Package guard provides a marker that distinguishes values built by their constructors
// from zero values created by struct literals.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and aggregates. Only constructors call
// NewConstructorGuard, so a zero-value guard identifies a value that skipped validation.
//
// Example:
//
//	type DispatchWaybillCommand struct {
//	    trackingNumber kernel.TrackingNumber
//	    guard          guard.ConstructorGuard
//	}
//
//	func (c DispatchWaybillCommand) Validate() error {
//	    return c.guard.Validate(ErrDispatchWaybillCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
