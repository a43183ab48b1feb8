package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrVerifyWaybillsQueryIsNotConstructed = errors.New(
	"VerifyWaybillsQuery must be created via NewVerifyWaybillsQuery constructor",
)

// VerifyWaybillsQuery checks inbound tracking numbers against the registered waybills.
type VerifyWaybillsQuery struct {
	trackingNumbers []string

	guard guard.ConstructorGuard
}

// NewVerifyWaybillsQuery accepts tracking numbers as given; blank entries are dropped.
func NewVerifyWaybillsQuery(trackingNumbers []string) (VerifyWaybillsQuery, error) {
	entries := make([]string, 0, len(trackingNumbers))
	for _, tn := range trackingNumbers {
		if tn = strings.TrimSpace(tn); tn != "" {
			entries = append(entries, tn)
		}
	}
	if len(entries) == 0 {
		return VerifyWaybillsQuery{}, errs.NewValueIsRequiredError("tracking numbers")
	}

	return VerifyWaybillsQuery{
		trackingNumbers: entries,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q VerifyWaybillsQuery) Validate() error {
	return q.guard.Validate(ErrVerifyWaybillsQueryIsNotConstructed)
}

func (q VerifyWaybillsQuery) TrackingNumbers() []string {
	return append([]string(nil), q.trackingNumbers...)
}
