package commands

import (
	"context"

	"logistics/internal/core/domain/model/courier"
)

// ReassignCourierCommandHandler loads the courier and the target zone and saves the
// courier under the new zone.
type ReassignCourierCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewReassignCourierCommandHandler(uowFactory RegistryUoWFactory) ReassignCourierCommandHandler {
	return ReassignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ReassignCourierCommandHandler) Handle(ctx context.Context, cmd ReassignCourierCommand) (*courier.Courier, error) {
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

	courierRepo := uow.CourierRepository()
	c, err := courierRepo.Get(ctx, cmd.Name())
	if err != nil {
		return nil, err
	}

	z, err := uow.ZoneRepository().Get(ctx, cmd.Zone())
	if err != nil {
		return nil, err
	}

	if err = c.Reassign(z.Name()); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
