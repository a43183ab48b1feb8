package commands

import (
	"context"

	"logistics/internal/core/domain/model/zone"
)

// UpdateZoneRateCommandHandler loads a zone, changes its rate and saves it.
type UpdateZoneRateCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewUpdateZoneRateCommandHandler(uowFactory RegistryUoWFactory) UpdateZoneRateCommandHandler {
	return UpdateZoneRateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateZoneRateCommandHandler) Handle(ctx context.Context, cmd UpdateZoneRateCommand) (*zone.Zone, error) {
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

	zoneRepo := uow.ZoneRepository()
	z, err := zoneRepo.Get(ctx, cmd.Name())
	if err != nil {
		return nil, err
	}

	if err = z.ChangeRate(cmd.Rate()); err != nil {
		return nil, err
	}

	if err = zoneRepo.Update(ctx, z); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return z, nil
}
