package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetSettlementQueryIsNotConstructed = errors.New(
	"GetSettlementQuery must be created via NewGetSettlementQuery constructor",
)

// GetSettlementQuery computes what is owed to couriers for the dispatches of a period.
//
// Example:
//
//	q, err := NewGetSettlementQuery("", "2024-03-01", "2024-03-31") // every courier
//	q, err := NewGetSettlementQuery("Ana", "2024-03-01", "2024-03-31")
type GetSettlementQuery struct {
	courier *kernel.Name
	period  kernel.DateRange

	guard guard.ConstructorGuard
}

// NewGetSettlementQuery takes YYYY-MM-DD dates; an empty courier selects every courier.
func NewGetSettlementQuery(courier, dateFrom, dateTo string) (GetSettlementQuery, error) {
	from, fromErr := kernel.ParseDate("date from", dateFrom)
	to, toErr := kernel.ParseDate("date to", dateTo)
	if err := errors.Join(fromErr, toErr); err != nil {
		return GetSettlementQuery{}, err
	}

	period, err := kernel.NewDateRange(from, to)
	if err != nil {
		return GetSettlementQuery{}, err
	}

	var courierName *kernel.Name
	if kernel.NormalizeText(courier) != "" {
		name, err := kernel.NewName("courier", courier)
		if err != nil {
			return GetSettlementQuery{}, err
		}
		courierName = &name
	}

	return GetSettlementQuery{
		courier: courierName,
		period:  period,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetSettlementQuery) Validate() error {
	return q.guard.Validate(ErrGetSettlementQueryIsNotConstructed)
}

// Courier returns nil when every courier is selected.
func (q GetSettlementQuery) Courier() *kernel.Name {
	if q.courier == nil {
		return nil
	}
	c := *q.courier
	return &c
}

func (q GetSettlementQuery) Period() kernel.DateRange {
	return q.period
}
