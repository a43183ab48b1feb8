package courier

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a messenger who takes waybills out for delivery.
//
// Key responsibilities:
//   - Holding the courier identity (unique name)
//   - Tracking the zone the courier currently works in
//
// Example usage:
//
//	c, err := courier.NewCourier(kernel.MustName("Ana"), kernel.MustName("Norte"))
//	if err != nil {
//	    // Handle construction error
//	}
//	_ = c.Reassign(kernel.MustName("Sur"))
type Courier struct {
	// name uniquely identifies the courier
	name kernel.Name
	// zone is the name of the zone the courier currently works in
	zone kernel.Name
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a courier working in the given zone.
//
// Parameters:
//   - name: unique courier name (must be non-empty)
//   - zone: name of the zone the courier belongs to (must be non-empty)
//
// Returns:
//   - *Courier: the courier when both names are valid
//   - error: aggregated validation errors for every missing value
func NewCourier(name, zone kernel.Name) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setZone(zone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier rebuilds a Courier loaded from storage.
func RestoreCourier(name, zone kernel.Name) (*Courier, error) {
	return NewCourier(name, zone)
}

// IsEqual compares couriers by name.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.name.IsEqual(other.name)
}

// Validate checks that the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// Name returns the unique courier name.
func (c *Courier) Name() kernel.Name {
	return c.name
}

// Zone returns the name of the zone the courier currently works in.
func (c *Courier) Zone() kernel.Name {
	return c.zone
}

// Reassign moves the courier to another zone. Dispatches already recorded keep the
// zone they were made in.
//
// Returns:
//   - error: ValueIsRequiredError when zone is empty
func (c *Courier) Reassign(zone kernel.Name) error {
	return c.setZone(zone)
}

func (c *Courier) setName(name kernel.Name) error {
	if name.IsZero() {
		return errs.NewValueIsRequiredError("courier")
	}
	c.name = name
	return nil
}

func (c *Courier) setZone(zone kernel.Name) error {
	if zone.IsZero() {
		return errs.NewValueIsRequiredError("zone")
	}
	c.zone = zone
	return nil
}
