package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterWaybillsCommandIsNotConstructed = errors.New(
	"RegisterWaybillsCommand must be created via NewRegisterWaybillsCommand constructor",
)

// WaybillRow is one imported waybill, as read from the bulk import source.
type WaybillRow struct {
	Sender         string
	TrackingNumber string
	Recipient      string
	Address        string
	City           string
}

// RegisterWaybillsCommand registers a batch of imported rows. Rows are validated one by
// one by the handler so that a bad row is reported instead of rejecting the whole import.
type RegisterWaybillsCommand struct {
	rows []WaybillRow

	guard guard.ConstructorGuard
}

func NewRegisterWaybillsCommand(rows []WaybillRow) (RegisterWaybillsCommand, error) {
	if len(rows) == 0 {
		return RegisterWaybillsCommand{}, errs.NewValueIsRequiredError("waybills")
	}

	return RegisterWaybillsCommand{
		rows:  append([]WaybillRow(nil), rows...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterWaybillsCommand) Validate() error {
	return c.guard.Validate(ErrRegisterWaybillsCommandIsNotConstructed)
}

func (c RegisterWaybillsCommand) Rows() []WaybillRow {
	return c.rows
}
