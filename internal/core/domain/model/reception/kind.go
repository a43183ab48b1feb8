package reception

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Kind is the outcome of a reception.
type Kind int

const (
	KindUnknown Kind = iota
	Delivered
	Returned
)

// ParseKind accepts DELIVERED and RETURNED, case-insensitively. The field labels used by
// the courier sheets (ENTREGA, DEVUELTA) are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DELIVERED", "ENTREGA":
		return Delivered, nil
	case "RETURNED", "DEVUELTA":
		return Returned, nil
	case "":
		return KindUnknown, errs.NewValueIsRequiredError("kind")
	default:
		return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("%q is neither DELIVERED nor RETURNED", s))
	}
}

func (k Kind) String() string {
	switch k {
	case Delivered:
		return "DELIVERED"
	case Returned:
		return "RETURNED"
	default:
		return "UNKNOWN"
	}
}

func (k Kind) Validate() error {
	if k != Delivered && k != Returned {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}
