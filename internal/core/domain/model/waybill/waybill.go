package waybill

import (
	"errors"
	"unicode/utf8"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const fieldMaxLength = 255

var (
	// ErrWaybillIsNotConstructed is returned when a Waybill instance was not created through
	// NewWaybill or RestoreWaybill.
	ErrWaybillIsNotConstructed = errors.New("Waybill must be created via NewWaybill constructor")
)

// Waybill is the aggregate root every dispatch and reception refers to through its
// tracking number.
//
// Waybill follows these invariants:
//   - Must have a valid tracking number
//   - Sender, recipient, address and city are non-empty and at most 255 characters
//   - Can only be created through NewWaybill or RestoreWaybill
//
// Example:
//
//	w, err := waybill.NewWaybill(
//	    kernel.MustTrackingNumber("GU-000123"),
//	    "Tienda Central", "María Pérez", "Calle 10 # 4-20", "Bogotá",
//	)
type Waybill struct {
	// trackingNumber is the unique key of the waybill
	trackingNumber kernel.TrackingNumber

	// sender is who hands the parcel over ("remitente")
	sender string

	// recipient is who receives the parcel ("destinatario")
	recipient string

	// address is the delivery address
	address string

	// city is the delivery city
	city string

	guard guard.ConstructorGuard
}

// NewWaybill creates a Waybill after normalizing and validating every field.
//
// Returns:
//   - *Waybill: the waybill if all validations pass
//   - error: the joined validation errors of every invalid field
func NewWaybill(
	trackingNumber kernel.TrackingNumber,
	sender, recipient, address, city string,
) (*Waybill, error) {
	w := &Waybill{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setTrackingNumber(trackingNumber),
		setText(&w.sender, "sender", sender),
		setText(&w.recipient, "recipient", recipient),
		setText(&w.address, "address", address),
		setText(&w.city, "city", city),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWaybill rebuilds a Waybill loaded from storage, applying the same validation as
// NewWaybill so corrupt rows surface as errors instead of half-built aggregates.
func RestoreWaybill(
	trackingNumber kernel.TrackingNumber,
	sender, recipient, address, city string,
) (*Waybill, error) {
	return NewWaybill(trackingNumber, sender, recipient, address, city)
}

// Validate ensures the Waybill was properly constructed.
func (w *Waybill) Validate() error {
	if w == nil {
		return ErrWaybillIsNotConstructed
	}
	return w.guard.Validate(ErrWaybillIsNotConstructed)
}

// TrackingNumber returns the waybill key.
func (w *Waybill) TrackingNumber() kernel.TrackingNumber {
	return w.trackingNumber
}

// Sender returns who sent the parcel.
func (w *Waybill) Sender() string {
	return w.sender
}

// Recipient returns who receives the parcel.
func (w *Waybill) Recipient() string {
	return w.recipient
}

// Address returns the delivery address.
func (w *Waybill) Address() string {
	return w.address
}

// City returns the delivery city.
func (w *Waybill) City() string {
	return w.city
}

func (w *Waybill) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	w.trackingNumber = tn
	return nil
}

func setText(dst *string, param, raw string) error {
	value := kernel.NormalizeText(raw)
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(value); n > fieldMaxLength {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 1, fieldMaxLength)
	}
	*dst = value
	return nil
}
