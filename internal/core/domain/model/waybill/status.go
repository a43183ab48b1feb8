package waybill

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a tracking number.
//
// State transitions:
//
//	Unknown ──register──> Pending ──dispatch──> Dispatched ──receive──┬──> Delivered
//	                                                                  └──> Returned
//
// Unknown and Pending differ only in whether a waybill is registered. Delivered and
// Returned are terminal.
type Status int

const (
	// Unknown means no waybill is registered under the tracking number ("FALTANTE").
	Unknown Status = iota

	// Pending means the waybill is registered and has not been dispatched.
	Pending

	// Dispatched means a courier took the waybill and no reception is recorded yet.
	Dispatched

	// Delivered means the reception recorded a successful delivery.
	Delivered

	// Returned means the reception recorded a return, with a reason.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Dispatched: "DISPATCHED",
		Delivered:  "DELIVERED",
		Returned:   "RETURNED",
	}
}

// ParseStatus converts the textual form produced by String back into a Status.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if str == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the declared statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name used in reports and the API.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned
}

// IsRegistered reports whether a waybill exists for the tracking number.
func (s Status) IsRegistered() bool {
	return s != Unknown
}

// MarshalText lets Status render as its name in JSON payloads.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
