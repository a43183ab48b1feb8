package queries

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetOverdueDispatchesQueryIsNotConstructed = errors.New(
	"GetOverdueDispatchesQuery must be created via NewGetOverdueDispatchesQuery constructor",
)

// GetOverdueDispatchesQuery finds dispatched waybills that have been out longer than
// olderThan without a reception.
type GetOverdueDispatchesQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewGetOverdueDispatchesQuery(olderThan time.Duration) (GetOverdueDispatchesQuery, error) {
	if olderThan <= 0 {
		return GetOverdueDispatchesQuery{}, errs.NewValueIsInvalidErrorWithCause("overdue after", fmt.Errorf("%s is not a positive duration", olderThan))
	}

	return GetOverdueDispatchesQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOverdueDispatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueDispatchesQueryIsNotConstructed)
}

func (q GetOverdueDispatchesQuery) OlderThan() time.Duration {
	return q.olderThan
}
