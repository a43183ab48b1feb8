package commands

import (
	"context"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/clock"
)

// DispatchWaybillCommandHandler records dispatches.
//
// Writers of the same tracking number are serialized by the locker, and every
// precondition is read again inside the transaction that inserts the dispatch. The
// unique constraint of the store catches writers in other processes; the repository
// reports that conflict as services.AlreadyDispatchedError.
type DispatchWaybillCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.Lifecycle
	locker     Locker
	clock      clock.Clock
	cache      ports.StatusCache
}

func NewDispatchWaybillCommandHandler(
	uowFactory LifecycleUoWFactory,
	lifecycle services.Lifecycle,
	locker Locker,
	clk clock.Clock,
	cache ports.StatusCache,
) DispatchWaybillCommandHandler {
	return DispatchWaybillCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		locker:     locker,
		clock:      clk,
		cache:      cache,
	}
}

// Handle dispatches the waybill and returns the stored record.
func (h *DispatchWaybillCommandHandler) Handle(ctx context.Context, cmd DispatchWaybillCommand) (*dispatch.Dispatch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.dispatch(ctx, cmd.TrackingNumber(), cmd.Courier())
}

func (h *DispatchWaybillCommandHandler) dispatch(
	ctx context.Context,
	tn kernel.TrackingNumber,
	courierName kernel.Name,
) (*dispatch.Dispatch, error) {
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

	dispatchRepo := uow.DispatchRepository()
	existing, err := optional(dispatchRepo.Get(ctx, tn))
	if err != nil {
		return nil, err
	}

	r, err := optional(uow.ReceptionRepository().Get(ctx, tn))
	if err != nil {
		return nil, err
	}

	c, err := optional(uow.CourierRepository().Get(ctx, courierName))
	if err != nil {
		return nil, err
	}

	d, err := h.lifecycle.Dispatch(tn, w, existing, r, c, courierName.String(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = dispatchRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.Invalidate(ctx, tn)
	return d, nil
}
