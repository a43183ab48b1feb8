package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRegisterZoneCommandIsNotConstructed = errors.New(
	"RegisterZoneCommand must be created via NewRegisterZoneCommand constructor",
)

// RegisterZoneCommand represents a request to add a zone with its per-dispatch rate.
//
// Example:
//
//	cmd, err := NewRegisterZoneCommand("Norte", "5000")
//	if err != nil {
//	    return fmt.Errorf("invalid zone data: %w", err)
//	}
//
//	handler := NewRegisterZoneCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register zone: %w", err)
//	}
type RegisterZoneCommand struct {
	name kernel.Name
	rate kernel.Money

	guard guard.ConstructorGuard
}

// NewRegisterZoneCommand parses the zone name and the rate typed by the operator. A
// non-numeric rate is reported as errs.ValueIsInvalidError.
func NewRegisterZoneCommand(name, rate string) (RegisterZoneCommand, error) {
	zoneName, nameErr := kernel.NewName("zone", name)
	zoneRate, rateErr := kernel.ParseMoney(rate)
	if err := errors.Join(nameErr, rateErr); err != nil {
		return RegisterZoneCommand{}, err
	}

	return RegisterZoneCommand{
		name:  zoneName,
		rate:  zoneRate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterZoneCommand) Validate() error {
	return c.guard.Validate(ErrRegisterZoneCommandIsNotConstructed)
}

func (c RegisterZoneCommand) Name() kernel.Name {
	return c.name
}

func (c RegisterZoneCommand) Rate() kernel.Money {
	return c.rate
}
