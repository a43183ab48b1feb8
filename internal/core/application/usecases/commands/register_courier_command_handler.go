package commands

import (
	"context"

	"logistics/internal/core/domain/model/courier"
)

// RegisterCourierCommandHandler handles the business logic for courier registration.
// The zone must exist: a missing zone surfaces as errs.ObjectNotFoundError, a taken
// courier name as errs.ObjectAlreadyExistsError.
type RegisterCourierCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewRegisterCourierCommandHandler creates a handler for courier registration.
func NewRegisterCourierCommandHandler(uowFactory RegistryUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the zone and persists the courier within one transaction.
func (h *RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) (*courier.Courier, error) {
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

	z, err := uow.ZoneRepository().Get(ctx, cmd.Zone())
	if err != nil {
		return nil, err
	}

	c, err := courier.NewCourier(cmd.Name(), z.Name())
	if err != nil {
		return nil, err
	}

	if err = uow.CourierRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
