// Package settlementrepo aggregates dispatches into courier settlements with GORM.
package settlementrepo

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// settlementRow is the scan target of the settlement aggregate.
type settlementRow struct {
	Courier    string
	Count      int64
	TotalMinor int64
}

// GormSettlementReader implements ports.SettlementReader using GORM.
type GormSettlementReader struct {
	db *gorm.DB
}

func NewGormSettlementReader(db *gorm.DB) *GormSettlementReader {
	return &GormSettlementReader{db: db}
}

// Settle sums the current rate of each dispatch's zone snapshot, grouped by courier.
func (r *GormSettlementReader) Settle(
	ctx context.Context,
	courier *kernel.Name,
	period kernel.DateRange,
) ([]ports.SettlementRow, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Table("dispatches AS d").
		Select("d.courier AS courier, COUNT(*) AS count, COALESCE(SUM(z.rate_minor), 0) AS total_minor").
		Joins("JOIN zones AS z ON z.name = d.zone").
		Where("d.dispatched_at >= ? AND d.dispatched_at < ?", period.Start(), period.End())
	if courier != nil {
		query = query.Where("d.courier = ?", courier.String())
	}

	var rows []settlementRow
	if err := query.Group("d.courier").Order("d.courier").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toPorts(rows)
}

func toPorts(rows []settlementRow) ([]ports.SettlementRow, error) {
	result := make([]ports.SettlementRow, 0, len(rows))
	for _, row := range rows {
		name, err := kernel.NewName("courier", row.Courier)
		if err != nil {
			return nil, err
		}
		total, err := kernel.NewMoneyFromMinor(row.TotalMinor)
		if err != nil {
			return nil, err
		}
		result = append(result, ports.SettlementRow{Courier: name, Count: row.Count, Total: total})
	}
	return result, nil
}
