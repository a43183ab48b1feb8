package reception

import (
	"errors"
	"time"
	"unicode/utf8"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const reasonMaxLength = 255

// ErrReceptionIsNotConstructed is returned when using a Reception that was not created
// via NewReception or RestoreReception.
var ErrReceptionIsNotConstructed = errors.New("Reception must be created via NewReception constructor")

// Reception is the terminal record of a waybill: delivered to the recipient or returned
// to the sender.
type Reception struct {
	trackingNumber kernel.TrackingNumber
	kind           Kind
	reason         string
	receivedAt     time.Time

	guard guard.ConstructorGuard
}

// NormalizeReason applies the reason rules of kind: the reason of a DELIVERED reception
// is always dropped, the reason of a RETURNED reception is required.
//
// It is exported so commands can reject a missing reason before any storage access.
func NormalizeReason(kind Kind, raw string) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}
	if kind == Delivered {
		return "", nil
	}

	reason := kernel.NormalizeText(raw)
	if reason == "" {
		return "", errs.NewValueIsRequiredErrorWithCause("reason", errors.New("returned waybills need a reason"))
	}
	if n := utf8.RuneCountInString(reason); n > reasonMaxLength {
		return "", errs.NewValueIsOutOfRangeError("reason length", n, 1, reasonMaxLength)
	}
	return reason, nil
}

// NewReception creates the reception of trackingNumber.
//
// Parameters:
//   - trackingNumber: waybill being received
//   - kind: Delivered or Returned
//   - reason: required for Returned, ignored for Delivered
//   - receivedAt: instant of the reception
func NewReception(
	trackingNumber kernel.TrackingNumber,
	kind Kind,
	reason string,
	receivedAt time.Time,
) (*Reception, error) {
	r := &Reception{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setTrackingNumber(trackingNumber),
		r.setKindAndReason(kind, reason),
		r.setReceivedAt(receivedAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReception rebuilds a Reception loaded from storage.
func RestoreReception(
	trackingNumber kernel.TrackingNumber,
	kind Kind,
	reason string,
	receivedAt time.Time,
) (*Reception, error) {
	return NewReception(trackingNumber, kind, reason, receivedAt)
}

func (r *Reception) Validate() error {
	if r == nil {
		return ErrReceptionIsNotConstructed
	}
	return r.guard.Validate(ErrReceptionIsNotConstructed)
}

func (r *Reception) TrackingNumber() kernel.TrackingNumber {
	return r.trackingNumber
}

func (r *Reception) Kind() Kind {
	return r.kind
}

// Reason is empty for delivered waybills.
func (r *Reception) Reason() string {
	return r.reason
}

func (r *Reception) ReceivedAt() time.Time {
	return r.receivedAt
}

func (r *Reception) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	r.trackingNumber = tn
	return nil
}

func (r *Reception) setKindAndReason(kind Kind, raw string) error {
	reason, err := NormalizeReason(kind, raw)
	if err != nil {
		return err
	}
	r.kind = kind
	r.reason = reason
	return nil
}

func (r *Reception) setReceivedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("received at")
	}
	r.receivedAt = at.UTC()
	return nil
}
