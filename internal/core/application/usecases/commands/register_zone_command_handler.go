package commands

import (
	"context"

	"logistics/internal/core/domain/model/zone"
)

// RegisterZoneCommandHandler persists new zones. A duplicate name is reported by the
// repository as errs.ObjectAlreadyExistsError.
type RegisterZoneCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewRegisterZoneCommandHandler(uowFactory RegistryUoWFactory) RegisterZoneCommandHandler {
	return RegisterZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the zone within a transaction.
func (h *RegisterZoneCommandHandler) Handle(ctx context.Context, cmd RegisterZoneCommand) (*zone.Zone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	z, err := zone.NewZone(cmd.Name(), cmd.Rate())
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

	if err = uow.ZoneRepository().Add(ctx, z); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return z, nil
}
