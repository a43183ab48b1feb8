package queries

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

type SettlementLineResponse struct {
	Courier string
	Count   int64
	Total   kernel.Money
}

// SettlementResponse holds one line per courier with dispatches in the period, ordered by
// courier name, and the grand totals.
type SettlementResponse struct {
	From  string
	To    string
	Lines []SettlementLineResponse
	Count int64
	Total kernel.Money
}

type GetSettlementQueryHandler struct {
	reader ports.SettlementReader
}

func NewGetSettlementQueryHandler(reader ports.SettlementReader) GetSettlementQueryHandler {
	return GetSettlementQueryHandler{reader: reader}
}

func (h GetSettlementQueryHandler) Handle(ctx context.Context, query GetSettlementQuery) (SettlementResponse, error) {
	if err := query.Validate(); err != nil {
		return SettlementResponse{}, err
	}

	period := query.Period()
	rows, err := h.reader.Settle(ctx, query.Courier(), period)
	if err != nil {
		return SettlementResponse{}, fmt.Errorf("settle %s: %w", period, err)
	}

	response := SettlementResponse{
		From:  period.From().Format(kernel.DateLayout),
		To:    period.To().Format(kernel.DateLayout),
		Lines: make([]SettlementLineResponse, 0, len(rows)),
	}
	for _, row := range rows {
		response.Lines = append(response.Lines, SettlementLineResponse{
			Courier: row.Courier.String(),
			Count:   row.Count,
			Total:   row.Total,
		})
		response.Count += row.Count
		response.Total = response.Total.Add(row.Total)
	}

	return response, nil
}
