package commands

import (
	"context"

	"logistics/internal/core/domain/model/pickup"
)

// UpdatePickupCommandHandler edits a pickup under the same waybill policy as registration.
type UpdatePickupCommandHandler struct {
	uowFactory PickupUoWFactory
	policy     PickupPolicy
}

func NewUpdatePickupCommandHandler(uowFactory PickupUoWFactory, policy PickupPolicy) UpdatePickupCommandHandler {
	return UpdatePickupCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *UpdatePickupCommandHandler) Handle(ctx context.Context, cmd UpdatePickupCommand) (*pickup.Pickup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pickupRepo := uow.PickupRepository()
	p, err := pickupRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = p.Update(cmd.InternalNumber(), cmd.Date(), cmd.Notes()); err != nil {
		return nil, err
	}

	if err = h.policy.check(ctx, uow.WaybillRepository(), p.InternalNumber()); err != nil {
		return nil, err
	}

	if err = pickupRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
