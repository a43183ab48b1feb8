package zone

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrZoneIsNotConstructed is returned when using a Zone that was not created via NewZone
// or RestoreZone.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

// Zone is a geographic service area with a per-dispatch rate.
//
// Settlements look the rate up through the zone stored on each dispatch, so changing a
// rate with ChangeRate is visible in every settlement computed afterwards, including
// settlements over past periods.
//
// Example usage:
//
//	rate, _ := kernel.ParseMoney("5000")
//	north, err := zone.NewZone(kernel.MustName("Norte"), rate)
//	if err != nil {
//	    // Handle validation error
//	}
type Zone struct {
	// name is the unique key of the zone
	name kernel.Name
	// rate is paid once per dispatch made in this zone
	rate kernel.Money
	// guard ensures the zone was properly constructed
	guard guard.ConstructorGuard
}

// NewZone registers a new zone.
//
// Parameters:
//   - name: unique zone name (must be non-empty)
//   - rate: amount paid per dispatch
//
// Returns:
//   - *Zone: the zone if the name is valid
//   - error: ValueIsRequiredError when the name is empty
func NewZone(name kernel.Name, rate kernel.Money) (*Zone, error) {
	z := &Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setName(name),
		z.setRate(rate),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone rebuilds a Zone loaded from storage.
func RestoreZone(name kernel.Name, rate kernel.Money) (*Zone, error) {
	return NewZone(name, rate)
}

// Validate ensures the Zone was created through a constructor.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// Name returns the unique zone name.
func (z *Zone) Name() kernel.Name {
	return z.name
}

// Rate returns the amount paid per dispatch.
func (z *Zone) Rate() kernel.Money {
	return z.rate
}

// ChangeRate replaces the per-dispatch rate.
func (z *Zone) ChangeRate(rate kernel.Money) error {
	return z.setRate(rate)
}

func (z *Zone) setName(name kernel.Name) error {
	if name.IsZero() {
		return errs.NewValueIsRequiredError("zone")
	}
	z.name = name
	return nil
}

func (z *Zone) setRate(rate kernel.Money) error {
	if rate.Minor() < 0 {
		return errs.NewValueIsOutOfRangeError("rate", rate.String(), 0, "unbounded")
	}
	z.rate = rate
	return nil
}
