package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateZoneRateCommandIsNotConstructed = errors.New(
	"UpdateZoneRateCommand must be created via NewUpdateZoneRateCommand constructor",
)

// UpdateZoneRateCommand changes the per-dispatch rate of an existing zone. The new rate
// applies to every settlement computed afterwards.
type UpdateZoneRateCommand struct {
	name kernel.Name
	rate kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateZoneRateCommand(name, rate string) (UpdateZoneRateCommand, error) {
	zoneName, nameErr := kernel.NewName("zone", name)
	zoneRate, rateErr := kernel.ParseMoney(rate)
	if err := errors.Join(nameErr, rateErr); err != nil {
		return UpdateZoneRateCommand{}, err
	}

	return UpdateZoneRateCommand{
		name:  zoneName,
		rate:  zoneRate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateZoneRateCommand) Validate() error {
	return c.guard.Validate(ErrUpdateZoneRateCommandIsNotConstructed)
}

func (c UpdateZoneRateCommand) Name() kernel.Name {
	return c.name
}

func (c UpdateZoneRateCommand) Rate() kernel.Money {
	return c.rate
}
