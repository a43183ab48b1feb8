package queries

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"golang.org/x/sync/singleflight"
)

// GetWaybillStatusQueryHandler resolves statuses through the status cache. Misses are
// loaded from storage, concurrent misses for the same tracking number share one load.
// Only terminal snapshots are cached: a load racing a dispatch or reception could
// otherwise store a snapshot the writer has already invalidated.
type GetWaybillStatusQueryHandler struct {
	repos     StatusRepoFactory
	lifecycle services.Lifecycle
	cache     ports.StatusCache
	loads     *singleflight.Group
}

func NewGetWaybillStatusQueryHandler(
	repos StatusRepoFactory,
	lifecycle services.Lifecycle,
	cache ports.StatusCache,
) GetWaybillStatusQueryHandler {
	return GetWaybillStatusQueryHandler{
		repos:     repos,
		lifecycle: lifecycle,
		cache:     cache,
		loads:     &singleflight.Group{},
	}
}

// Handle never fails for an unregistered tracking number: the snapshot status is UNKNOWN.
func (h GetWaybillStatusQueryHandler) Handle(
	ctx context.Context,
	query GetWaybillStatusQuery,
) (WaybillStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return WaybillStatusResponse{}, err
	}

	snapshot, err := h.resolve(ctx, query.TrackingNumber())
	if err != nil {
		return WaybillStatusResponse{}, err
	}
	return newWaybillStatusResponse(snapshot), nil
}

func (h GetWaybillStatusQueryHandler) resolve(ctx context.Context, tn kernel.TrackingNumber) (services.Snapshot, error) {
	if snapshot, ok := h.cache.Get(ctx, tn); ok {
		return snapshot, nil
	}

	// The load is shared by every waiting caller, so it must outlive the first one.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := h.loads.Do(tn.String(), func() (any, error) {
		snapshot, err := h.load(loadCtx, tn)
		if err != nil {
			return nil, err
		}
		if snapshot.Status.IsTerminal() {
			h.cache.Set(loadCtx, snapshot)
		}
		return snapshot, nil
	})
	if err != nil {
		return services.Snapshot{}, err
	}

	return v.(services.Snapshot), nil
}

func (h GetWaybillStatusQueryHandler) load(ctx context.Context, tn kernel.TrackingNumber) (services.Snapshot, error) {
	w, err := optional(h.repos.WaybillRepository().Get(ctx, tn))
	if err != nil {
		return services.Snapshot{}, fmt.Errorf("load waybill: %w", err)
	}
	if w == nil {
		return h.lifecycle.Resolve(tn, nil, nil, nil), nil
	}

	d, err := optional(h.repos.DispatchRepository().Get(ctx, tn))
	if err != nil {
		return services.Snapshot{}, fmt.Errorf("load dispatch: %w", err)
	}
	r, err := optional(h.repos.ReceptionRepository().Get(ctx, tn))
	if err != nil {
		return services.Snapshot{}, fmt.Errorf("load reception: %w", err)
	}

	return h.lifecycle.Resolve(tn, w, d, r), nil
}
