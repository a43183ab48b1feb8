package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdatePickupCommandIsNotConstructed = errors.New(
	"UpdatePickupCommand must be created via NewUpdatePickupCommand constructor",
)

// UpdatePickupCommand replaces the editable fields of a logged pickup.
type UpdatePickupCommand struct {
	id             kernel.UUID
	internalNumber string
	date           time.Time
	notes          string

	guard guard.ConstructorGuard
}

func NewUpdatePickupCommand(id, internalNumber, date, notes string) (UpdatePickupCommand, error) {
	pickupID, idErr := kernel.UUIDFromString(id)
	d, dateErr := kernel.ParseDate("date", date)
	if err := errors.Join(idErr, dateErr); err != nil {
		return UpdatePickupCommand{}, err
	}

	return UpdatePickupCommand{
		id:             pickupID,
		internalNumber: internalNumber,
		date:           d,
		notes:          notes,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePickupCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePickupCommandIsNotConstructed)
}

func (c UpdatePickupCommand) ID() kernel.UUID {
	return c.id
}

func (c UpdatePickupCommand) InternalNumber() string {
	return c.internalNumber
}

func (c UpdatePickupCommand) Date() time.Time {
	return c.date
}

func (c UpdatePickupCommand) Notes() string {
	return c.notes
}
