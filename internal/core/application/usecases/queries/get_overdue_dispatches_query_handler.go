package queries

import (
	"context"

	"logistics/internal/pkg/clock"
)

type GetOverdueDispatchesQueryHandler struct {
	repos DispatchRepoFactory
	clock clock.Clock
}

func NewGetOverdueDispatchesQueryHandler(repos DispatchRepoFactory, clk clock.Clock) GetOverdueDispatchesQueryHandler {
	return GetOverdueDispatchesQueryHandler{repos: repos, clock: clk}
}

// Handle returns the overdue dispatches oldest first.
func (h GetOverdueDispatchesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueDispatchesQuery,
) ([]DispatchResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := h.clock.Now().Add(-query.OlderThan())
	dispatches, err := h.repos.DispatchRepository().GetUnreceivedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	return mapAll(dispatches, newDispatchResponse), nil
}
