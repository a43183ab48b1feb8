package services

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/pkg/errs"
)

var (
	// ErrWaybillNotFound is returned when no waybill is registered under a tracking number.
	ErrWaybillNotFound = errors.New("waybill not found")

	// ErrUnknownCourier is returned when a courier name does not resolve to a registered courier.
	ErrUnknownCourier = errors.New("unknown courier")

	// ErrAlreadyDispatched is returned when a dispatch already exists for a tracking number.
	ErrAlreadyDispatched = errors.New("waybill already dispatched")

	// ErrAlreadyReceived is returned when a reception already exists for a tracking number.
	ErrAlreadyReceived = errors.New("waybill already received")

	// ErrNotDispatchedYet is returned when receiving a waybill that has no dispatch.
	ErrNotDispatchedYet = errors.New("waybill not dispatched yet")
)

// WaybillNotFoundError matches both ErrWaybillNotFound and errs.ErrObjectNotFound.
type WaybillNotFoundError struct {
	TrackingNumber kernel.TrackingNumber
}

func NewWaybillNotFoundError(tn kernel.TrackingNumber) *WaybillNotFoundError {
	return &WaybillNotFoundError{TrackingNumber: tn}
}

func (e *WaybillNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrWaybillNotFound, e.TrackingNumber)
}

func (e *WaybillNotFoundError) Unwrap() []error {
	return []error{ErrWaybillNotFound, errs.ErrObjectNotFound}
}

// UnknownCourierError names the courier that could not be resolved.
type UnknownCourierError struct {
	Courier string
}

func NewUnknownCourierError(name string) *UnknownCourierError {
	return &UnknownCourierError{Courier: name}
}

func (e *UnknownCourierError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownCourier, e.Courier)
}

func (e *UnknownCourierError) Unwrap() error {
	return ErrUnknownCourier
}

// AlreadyDispatchedError describes the dispatch that blocked a second one. Courier is
// zero when the conflict was detected by the storage unique constraint.
type AlreadyDispatchedError struct {
	TrackingNumber kernel.TrackingNumber
	Courier        kernel.Name
}

func NewAlreadyDispatchedError(tn kernel.TrackingNumber, courierName kernel.Name) *AlreadyDispatchedError {
	return &AlreadyDispatchedError{TrackingNumber: tn, Courier: courierName}
}

func (e *AlreadyDispatchedError) Error() string {
	if e.Courier.IsZero() {
		return fmt.Sprintf("%s: %s", ErrAlreadyDispatched, e.TrackingNumber)
	}
	return fmt.Sprintf("%s: %s by %s", ErrAlreadyDispatched, e.TrackingNumber, e.Courier)
}

func (e *AlreadyDispatchedError) Unwrap() error {
	return ErrAlreadyDispatched
}

// AlreadyReceivedError describes the reception that closed the waybill. Kind is
// KindUnknown when the conflict was detected by the storage unique constraint.
type AlreadyReceivedError struct {
	TrackingNumber kernel.TrackingNumber
	Kind           reception.Kind
}

func NewAlreadyReceivedError(tn kernel.TrackingNumber, kind reception.Kind) *AlreadyReceivedError {
	return &AlreadyReceivedError{TrackingNumber: tn, Kind: kind}
}

func (e *AlreadyReceivedError) Error() string {
	if e.Kind == reception.KindUnknown {
		return fmt.Sprintf("%s: %s", ErrAlreadyReceived, e.TrackingNumber)
	}
	return fmt.Sprintf("%s: %s as %s", ErrAlreadyReceived, e.TrackingNumber, e.Kind)
}

func (e *AlreadyReceivedError) Unwrap() error {
	return ErrAlreadyReceived
}

func newNotDispatchedYetError(tn kernel.TrackingNumber) error {
	return fmt.Errorf("%w: %s", ErrNotDispatchedYet, tn)
}
