package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a request to add a courier to an existing zone.
//
// Example:
//
//	cmd, err := NewRegisterCourierCommand("Ana", "Norte")
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewRegisterCourierCommandHandler(uowFactory)
//	c, err := handler.Handle(ctx, cmd)
type RegisterCourierCommand struct {
	name kernel.Name
	zone kernel.Name

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand validates that both names are present.
func NewRegisterCourierCommand(name, zone string) (RegisterCourierCommand, error) {
	courierName, nameErr := kernel.NewName("courier", name)
	zoneName, zoneErr := kernel.NewName("zone", zone)
	if err := errors.Join(nameErr, zoneErr); err != nil {
		return RegisterCourierCommand{}, err
	}

	return RegisterCourierCommand{
		name:  courierName,
		zone:  zoneName,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

func (c RegisterCourierCommand) Name() kernel.Name {
	return c.name
}

func (c RegisterCourierCommand) Zone() kernel.Name {
	return c.zone
}
