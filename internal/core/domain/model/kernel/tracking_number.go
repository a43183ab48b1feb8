package kernel

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
)

const (
	trackingNumberMaxLength = 255
)

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError("tracking number")

// TrackingNumber identifies a waybill. It is the key every dispatch, reception and
// status lookup refers to.
//
// Scanner input frequently carries stray whitespace or a different Unicode composition,
// so the constructor normalizes before validating. Internal whitespace is rejected: a
// scanned code never contains spaces, and accepting them would let "A 1" and "A1" become
// two different waybills.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber normalizes and validates raw.
func NewTrackingNumber(raw string) (TrackingNumber, error) {
	value := normalize(raw)
	if value == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("tracking number")
	}
	if n := utf8.RuneCountInString(value); n > trackingNumberMaxLength {
		return TrackingNumber{}, errs.NewValueIsOutOfRangeError("tracking number length", n, 1, trackingNumberMaxLength)
	}
	if strings.IndexFunc(value, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return TrackingNumber{}, errs.NewValueIsInvalidError("tracking number")
	}
	return TrackingNumber{value: value}, nil
}

// MustTrackingNumber is NewTrackingNumber for values known to be valid (tests, fixtures).
func MustTrackingNumber(raw string) TrackingNumber {
	tn, err := NewTrackingNumber(raw)
	if err != nil {
		panic(err)
	}
	return tn
}

func (t TrackingNumber) String() string {
	return t.value
}

func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}

// SplitScannerInput turns multi-line scanner input into trimmed, non-empty entries,
// preserving order and duplicates.
func SplitScannerInput(text string) []string {
	lines := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
