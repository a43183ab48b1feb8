package services

import (
	"errors"

	"logistics/internal/pkg/errs"
)

// FailureKind is the caller-visible category of a failed operation. Batch results carry
// one per failed item.
type FailureKind string

const (
	FailureNotFound          FailureKind = "NOT_FOUND"
	FailureUnknownCourier    FailureKind = "UNKNOWN_COURIER"
	FailureAlreadyDispatched FailureKind = "ALREADY_DISPATCHED"
	FailureAlreadyReceived   FailureKind = "ALREADY_RECEIVED"
	FailureNotDispatchedYet  FailureKind = "NOT_DISPATCHED_YET"
	FailureInvalidInput      FailureKind = "INVALID_INPUT"
	FailureAlreadyExists     FailureKind = "ALREADY_EXISTS"
	FailureInternal          FailureKind = "INTERNAL"
)

// Classify maps err to its FailureKind. Lifecycle errors win over the generic errs
// categories they may also match; anything unrecognised is FailureInternal.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWaybillNotFound):
		return FailureNotFound
	case errors.Is(err, ErrUnknownCourier):
		return FailureUnknownCourier
	case errors.Is(err, ErrAlreadyReceived):
		return FailureAlreadyReceived
	case errors.Is(err, ErrAlreadyDispatched):
		return FailureAlreadyDispatched
	case errors.Is(err, ErrNotDispatchedYet):
		return FailureNotDispatchedYet
	case errors.Is(err, errs.ErrObjectNotFound):
		return FailureNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return FailureAlreadyExists
	case errs.IsInvalidInput(err):
		return FailureInvalidInput
	default:
		return FailureInternal
	}
}
