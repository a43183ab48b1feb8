package kernel

import (
	"unicode/utf8"

	"logistics/internal/pkg/errs"
)

const nameMaxLength = 100

// Name is the natural key of zones and couriers.
type Name struct {
	value string
}

// NewName normalizes raw and checks it is between 1 and 100 characters. param names the
// field in the returned error ("zone", "courier").
func NewName(param, raw string) (Name, error) {
	value := normalize(raw)
	if value == "" {
		return Name{}, errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(value); n > nameMaxLength {
		return Name{}, errs.NewValueIsOutOfRangeError(param+" length", n, 1, nameMaxLength)
	}
	return Name{value: value}, nil
}

// MustName is NewName for values known to be valid.
func MustName(raw string) Name {
	n, err := NewName("name", raw)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) String() string {
	return n.value
}

func (n Name) IsEqual(other Name) bool {
	return n.value == other.value
}

func (n Name) IsZero() bool {
	return n.value == ""
}
