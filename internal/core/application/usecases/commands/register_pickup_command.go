package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRegisterPickupCommandIsNotConstructed = errors.New(
	"RegisterPickupCommand must be created via NewRegisterPickupCommand constructor",
)

// RegisterPickupCommand logs a pickup. The date is required and must be YYYY-MM-DD.
type RegisterPickupCommand struct {
	internalNumber string
	date           time.Time
	notes          string

	guard guard.ConstructorGuard
}

func NewRegisterPickupCommand(internalNumber, date, notes string) (RegisterPickupCommand, error) {
	d, err := kernel.ParseDate("date", date)
	if err != nil {
		return RegisterPickupCommand{}, err
	}

	return RegisterPickupCommand{
		internalNumber: internalNumber,
		date:           d,
		notes:          notes,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterPickupCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPickupCommandIsNotConstructed)
}

func (c RegisterPickupCommand) InternalNumber() string {
	return c.internalNumber
}

func (c RegisterPickupCommand) Date() time.Time {
	return c.date
}

func (c RegisterPickupCommand) Notes() string {
	return c.notes
}
