package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrReassignCourierCommandIsNotConstructed = errors.New(
	"ReassignCourierCommand must be created via NewReassignCourierCommand constructor",
)

// ReassignCourierCommand moves a courier to another zone. Dispatches already made keep
// the zone they were made in.
type ReassignCourierCommand struct {
	name kernel.Name
	zone kernel.Name

	guard guard.ConstructorGuard
}

func NewReassignCourierCommand(name, zone string) (ReassignCourierCommand, error) {
	courierName, nameErr := kernel.NewName("courier", name)
	zoneName, zoneErr := kernel.NewName("zone", zone)
	if err := errors.Join(nameErr, zoneErr); err != nil {
		return ReassignCourierCommand{}, err
	}

	return ReassignCourierCommand{
		name:  courierName,
		zone:  zoneName,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReassignCourierCommand) Validate() error {
	return c.guard.Validate(ErrReassignCourierCommandIsNotConstructed)
}

func (c ReassignCourierCommand) Name() kernel.Name {
	return c.name
}

func (c ReassignCourierCommand) Zone() kernel.Name {
	return c.zone
}
