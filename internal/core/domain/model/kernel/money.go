package kernel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"logistics/internal/pkg/errs"
)

const minorUnitsPerUnit = 100

// Money is a non-negative amount stored in minor units (hundredths). Zone rates are typed
// by operators as decimal text ("5000", "4500.50"), and settlement totals must add up
// exactly, so amounts never pass through float64.
type Money struct {
	minor int64
}

// NewMoneyFromMinor builds Money from minor units.
func NewMoneyFromMinor(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", minor, 0, int64(math.MaxInt64))
	}
	return Money{minor: minor}, nil
}

// MustMoney parses s and panics on error. Intended for tests and constants.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney parses a decimal amount with at most two fractional digits. Both "." and ","
// are accepted as the decimal separator; grouping separators are not.
func ParseMoney(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}
	raw = strings.Replace(raw, ",", ".", 1)

	whole, frac, hasFrac := strings.Cut(raw, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal amount", s))
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || strings.HasPrefix(whole, "+") {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal amount", s))
	}
	if units < 0 || strings.HasPrefix(whole, "-") {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", s, 0, "unbounded")
	}
	if units > math.MaxInt64/minorUnitsPerUnit-1 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", s, 0, math.MaxInt64/minorUnitsPerUnit-1)
	}

	var cents int64
	if hasFrac {
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || strings.ContainsAny(frac, "+-") {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal amount", s))
		}
	}

	return Money{minor: units*minorUnitsPerUnit + cents}, nil
}

// Minor returns the amount in hundredths.
func (m Money) Minor() int64 {
	return m.minor
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

// Times returns m multiplied by a dispatch count.
func (m Money) Times(n int64) Money {
	return Money{minor: m.minor * n}
}

func (m Money) IsEqual(other Money) bool {
	return m.minor == other.minor
}

// String formats the amount with two decimals, e.g. "10000.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minor/minorUnitsPerUnit, m.minor%minorUnitsPerUnit)
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a JSON string holding a decimal amount.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	parsed, err := ParseMoney(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
