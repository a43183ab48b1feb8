package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// PickupPolicy decides whether a pickup's internal number must name a registered waybill.
type PickupPolicy struct {
	RequireWaybill bool
}

// RegisterPickupCommandHandler persists pickup log entries.
type RegisterPickupCommandHandler struct {
	uowFactory PickupUoWFactory
	policy     PickupPolicy
}

func NewRegisterPickupCommandHandler(uowFactory PickupUoWFactory, policy PickupPolicy) RegisterPickupCommandHandler {
	return RegisterPickupCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *RegisterPickupCommandHandler) Handle(ctx context.Context, cmd RegisterPickupCommand) (*pickup.Pickup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := pickup.NewPickup(cmd.InternalNumber(), cmd.Date(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = h.policy.check(ctx, uow.WaybillRepository(), p.InternalNumber()); err != nil {
		return nil, err
	}

	if err = uow.PickupRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

func (p PickupPolicy) check(ctx context.Context, waybills ports.WaybillRepository, internalNumber string) error {
	if !p.RequireWaybill {
		return nil
	}
	if internalNumber == "" {
		return errs.NewValueIsRequiredError("internal number")
	}

	tn, err := kernel.NewTrackingNumber(internalNumber)
	if err != nil {
		return err
	}

	_, err = waybills.Get(ctx, tn)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.NewWaybillNotFoundError(tn)
	}
	return err
}
