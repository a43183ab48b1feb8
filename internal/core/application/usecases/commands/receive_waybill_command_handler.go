package commands

import (
	"context"

	"logistics/internal/core/domain/model/reception"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/clock"
)

// ReceiveWaybillCommandHandler records receptions under the same locking and
// re-validation scheme as DispatchWaybillCommandHandler.
type ReceiveWaybillCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.Lifecycle
	locker     Locker
	clock      clock.Clock
	cache      ports.StatusCache
}

func NewReceiveWaybillCommandHandler(
	uowFactory LifecycleUoWFactory,
	lifecycle services.Lifecycle,
	locker Locker,
	clk clock.Clock,
	cache ports.StatusCache,
) ReceiveWaybillCommandHandler {
	return ReceiveWaybillCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		locker:     locker,
		clock:      clk,
		cache:      cache,
	}
}

func (h *ReceiveWaybillCommandHandler) Handle(ctx context.Context, cmd ReceiveWaybillCommand) (*reception.Reception, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tn := cmd.TrackingNumber()
	unlock := h.locker.Lock(tn.String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	w, err := optional(uow.WaybillRepository().Get(ctx, tn))
	if err != nil {
		return nil, err
	}

	d, err := optional(uow.DispatchRepository().Get(ctx, tn))
	if err != nil {
		return nil, err
	}

	receptionRepo := uow.ReceptionRepository()
	existing, err := optional(receptionRepo.Get(ctx, tn))
	if err != nil {
		return nil, err
	}

	r, err := h.lifecycle.Receive(tn, w, d, existing, cmd.Kind(), cmd.Reason(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = receptionRepo.Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.Invalidate(ctx, tn)
	return r, nil
}
