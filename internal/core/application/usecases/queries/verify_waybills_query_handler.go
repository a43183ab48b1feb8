package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// VerifyWaybillsResponse splits the verified entries. Entries that are not valid tracking
// numbers are reported as missing. Both lists keep input order.
type VerifyWaybillsResponse struct {
	Found   []string
	Missing []string
}

type VerifyWaybillsQueryHandler struct {
	repos WaybillRepoFactory
}

func NewVerifyWaybillsQueryHandler(repos WaybillRepoFactory) VerifyWaybillsQueryHandler {
	return VerifyWaybillsQueryHandler{repos: repos}
}

func (h VerifyWaybillsQueryHandler) Handle(ctx context.Context, query VerifyWaybillsQuery) (VerifyWaybillsResponse, error) {
	if err := query.Validate(); err != nil {
		return VerifyWaybillsResponse{}, err
	}

	inputs := query.TrackingNumbers()
	parsed := make([]kernel.TrackingNumber, len(inputs))
	valid := make([]kernel.TrackingNumber, 0, len(inputs))
	for i, input := range inputs {
		tn, err := kernel.NewTrackingNumber(input)
		if err != nil {
			continue
		}
		parsed[i] = tn
		valid = append(valid, tn)
	}

	existing := map[string]struct{}{}
	if len(valid) > 0 {
		found, err := h.repos.WaybillRepository().FindExisting(ctx, valid)
		if err != nil {
			return VerifyWaybillsResponse{}, err
		}
		for _, tn := range found {
			existing[tn.String()] = struct{}{}
		}
	}

	response := VerifyWaybillsResponse{Found: []string{}, Missing: []string{}}
	for i, input := range inputs {
		if _, ok := existing[parsed[i].String()]; ok {
			response.Found = append(response.Found, parsed[i].String())
			continue
		}
		response.Missing = append(response.Missing, input)
	}

	return response, nil
}
