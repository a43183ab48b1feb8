package sqlite

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

type settlementReader struct {
	q querier
}

func (r *settlementReader) Settle(
	ctx context.Context,
	courier *kernel.Name,
	period kernel.DateRange,
) ([]ports.SettlementRow, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	query := `SELECT d.courier, COUNT(*), COALESCE(SUM(z.rate_minor), 0)
		 FROM dispatches d
		 JOIN zones z ON z.name = d.zone
		 WHERE d.dispatched_at >= ? AND d.dispatched_at < ?`
	args := []any{toMillis(period.Start()), toMillis(period.End())}
	if courier != nil {
		query += ` AND d.courier = ?`
		args = append(args, courier.String())
	}
	query += ` GROUP BY d.courier ORDER BY d.courier`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("settle dispatches: %w", err)
	}
	return collect(rows, func(s scanner) (ports.SettlementRow, error) {
		var (
			name         string
			count, total int64
		)
		if err := s.Scan(&name, &count, &total); err != nil {
			return ports.SettlementRow{}, err
		}
		courierName, err := kernel.NewName("courier", name)
		if err != nil {
			return ports.SettlementRow{}, err
		}
		money, err := kernel.NewMoneyFromMinor(total)
		if err != nil {
			return ports.SettlementRow{}, err
		}
		return ports.SettlementRow{Courier: courierName, Count: count, Total: money}, nil
	})
}
