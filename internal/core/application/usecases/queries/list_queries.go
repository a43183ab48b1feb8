package queries

import (
	"context"
)

// GetAllZonesQueryHandler lists zones ordered by name.
type GetAllZonesQueryHandler struct {
	repos ZoneRepoFactory
}

func NewGetAllZonesQueryHandler(repos ZoneRepoFactory) GetAllZonesQueryHandler {
	return GetAllZonesQueryHandler{repos: repos}
}

func (h GetAllZonesQueryHandler) Handle(ctx context.Context) ([]ZoneResponse, error) {
	zones, err := h.repos.ZoneRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(zones, newZoneResponse), nil
}

// GetAllCouriersQueryHandler lists couriers ordered by name.
type GetAllCouriersQueryHandler struct {
	repos CourierRepoFactory
}

func NewGetAllCouriersQueryHandler(repos CourierRepoFactory) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{repos: repos}
}

func (h GetAllCouriersQueryHandler) Handle(ctx context.Context) ([]CourierResponse, error) {
	couriers, err := h.repos.CourierRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(couriers, newCourierResponse), nil
}

// GetAllDispatchesQueryHandler lists dispatches newest first.
type GetAllDispatchesQueryHandler struct {
	repos DispatchRepoFactory
}

func NewGetAllDispatchesQueryHandler(repos DispatchRepoFactory) GetAllDispatchesQueryHandler {
	return GetAllDispatchesQueryHandler{repos: repos}
}

func (h GetAllDispatchesQueryHandler) Handle(ctx context.Context) ([]DispatchResponse, error) {
	dispatches, err := h.repos.DispatchRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(dispatches, newDispatchResponse), nil
}

// GetAllPickupsQueryHandler lists pickups newest date first.
type GetAllPickupsQueryHandler struct {
	repos PickupRepoFactory
}

func NewGetAllPickupsQueryHandler(repos PickupRepoFactory) GetAllPickupsQueryHandler {
	return GetAllPickupsQueryHandler{repos: repos}
}

func (h GetAllPickupsQueryHandler) Handle(ctx context.Context) ([]PickupResponse, error) {
	pickups, err := h.repos.PickupRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(pickups, newPickupResponse), nil
}

func mapAll[T any, R any](items []T, f func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, f(item))
	}
	return out
}
