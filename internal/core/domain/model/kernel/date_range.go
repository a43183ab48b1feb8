package kernel

import (
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
)

// DateLayout is the calendar-date format accepted from operators.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(param, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errs.NewValueIsRequiredError(param)
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a YYYY-MM-DD date", s))
	}
	return d, nil
}

// TruncateToDate drops the time-of-day of t, in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive range of calendar dates, evaluated in UTC.
//
// A range of 2024-01-01..2024-01-31 selects every instant from 2024-01-01T00:00:00Z up to,
// but excluding, 2024-02-01T00:00:00Z.
type DateRange struct {
	from time.Time
	to   time.Time
}

// NewDateRange builds a range from two dates; the time-of-day of both is ignored.
func NewDateRange(from, to time.Time) (DateRange, error) {
	if from.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("date from")
	}
	if to.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("date to")
	}
	from, to = TruncateToDate(from), TruncateToDate(to)
	if to.Before(from) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
			"date range",
			fmt.Errorf("%s is before %s", to.Format(DateLayout), from.Format(DateLayout)),
		)
	}
	return DateRange{from: from, to: to}, nil
}

// From returns the first calendar date of the range.
func (r DateRange) From() time.Time {
	return r.from
}

// To returns the last calendar date of the range.
func (r DateRange) To() time.Time {
	return r.to
}

// Start is the first instant inside the range.
func (r DateRange) Start() time.Time {
	return r.from
}

// End is the first instant after the range.
func (r DateRange) End() time.Time {
	return r.to.AddDate(0, 0, 1)
}

// Contains reports whether t falls on one of the range's calendar dates.
func (r DateRange) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(r.Start()) && t.Before(r.End())
}

func (r DateRange) Validate() error {
	if r.from.IsZero() || r.to.IsZero() {
		return errs.NewValueIsRequiredError("date range")
	}
	return nil
}

func (r DateRange) String() string {
	return r.from.Format(DateLayout) + ".." + r.to.Format(DateLayout)
}
