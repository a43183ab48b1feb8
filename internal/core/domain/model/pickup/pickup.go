package pickup

import (
	"errors"
	"time"
	"unicode/utf8"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	internalNumberMaxLength = 100
	notesMaxLength          = 500
)

var (
	// ErrPickupIsNotConstructed is returned when using a Pickup that was not created via
	// NewPickup or RestorePickup.
	ErrPickupIsNotConstructed = errors.New("Pickup must be created via NewPickup constructor")
)

// Pickup is a dated collection record.
//
// Pickup follows these invariants:
//   - Has a valid UUID
//   - Has a calendar date (time-of-day is dropped)
//   - Internal number is optional, at most 100 characters
//   - Notes are optional, at most 500 characters
type Pickup struct {
	id             kernel.UUID
	internalNumber string
	date           time.Time
	notes          string

	guard guard.ConstructorGuard
}

// NewPickup creates a pickup with a fresh identifier.
func NewPickup(internalNumber string, date time.Time, notes string) (*Pickup, error) {
	return RestorePickup(kernel.NewUUID(), internalNumber, date, notes)
}

// RestorePickup rebuilds a Pickup loaded from storage.
func RestorePickup(id kernel.UUID, internalNumber string, date time.Time, notes string) (*Pickup, error) {
	p := &Pickup{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setInternalNumber(internalNumber),
		p.setDate(date),
		p.setNotes(notes),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Update replaces every editable field. On error the pickup is left unchanged.
func (p *Pickup) Update(internalNumber string, date time.Time, notes string) error {
	next := *p
	if err := errors.Join(
		next.setInternalNumber(internalNumber),
		next.setDate(date),
		next.setNotes(notes),
	); err != nil {
		return err
	}
	*p = next
	return nil
}

func (p *Pickup) Validate() error {
	if p == nil {
		return ErrPickupIsNotConstructed
	}
	return p.guard.Validate(ErrPickupIsNotConstructed)
}

func (p *Pickup) ID() kernel.UUID {
	return p.id
}

// InternalNumber returns the optional reference typed by the operator, often a tracking
// number.
func (p *Pickup) InternalNumber() string {
	return p.internalNumber
}

// Date returns the calendar date of the pickup at midnight UTC.
func (p *Pickup) Date() time.Time {
	return p.date
}

func (p *Pickup) Notes() string {
	return p.notes
}

func (p *Pickup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pickup) setInternalNumber(raw string) error {
	value := kernel.NormalizeText(raw)
	if n := utf8.RuneCountInString(value); n > internalNumberMaxLength {
		return errs.NewValueIsOutOfRangeError("internal number length", n, 0, internalNumberMaxLength)
	}
	p.internalNumber = value
	return nil
}

func (p *Pickup) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	p.date = kernel.TruncateToDate(date)
	return nil
}

func (p *Pickup) setNotes(raw string) error {
	value := kernel.NormalizeText(raw)
	if n := utf8.RuneCountInString(value); n > notesMaxLength {
		return errs.NewValueIsOutOfRangeError("notes length", n, 0, notesMaxLength)
	}
	p.notes = value
	return nil
}
