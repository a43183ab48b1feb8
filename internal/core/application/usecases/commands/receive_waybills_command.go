package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrReceiveWaybillsCommandIsNotConstructed = errors.New(
	"ReceiveWaybillsCommand must be created via NewReceiveWaybillsCommand constructor",
)

// ReceptionItem is one line of a reception intake sheet.
type ReceptionItem struct {
	TrackingNumber string
	Kind           string
	Reason         string
}

// ReceiveWaybillsCommand applies several receptions with the continue-on-failure policy of
// bulk dispatch. Items are validated one by one by the handler.
type ReceiveWaybillsCommand struct {
	items []ReceptionItem

	guard guard.ConstructorGuard
}

func NewReceiveWaybillsCommand(items []ReceptionItem) (ReceiveWaybillsCommand, error) {
	if len(items) == 0 {
		return ReceiveWaybillsCommand{}, errs.NewValueIsRequiredError("receptions")
	}

	return ReceiveWaybillsCommand{
		items: append([]ReceptionItem(nil), items...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReceiveWaybillsCommand) Validate() error {
	return c.guard.Validate(ErrReceiveWaybillsCommandIsNotConstructed)
}

func (c ReceiveWaybillsCommand) Items() []ReceptionItem {
	return c.items
}
