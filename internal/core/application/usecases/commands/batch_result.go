package commands

import (
	"logistics/internal/core/domain/services"
)

// ItemFailure describes why one item of a batch was not applied.
type ItemFailure struct {
	// TrackingNumber is the input as received, so unparsable values can be reported too.
	TrackingNumber string
	Kind           services.FailureKind
	Err            error
}

// BatchResult is the outcome of a bulk dispatch or bulk reception. Items are evaluated
// independently: a failed item never prevents the next one from being applied.
type BatchResult struct {
	Succeeded []string
	Failed    []ItemFailure
}

func (r *BatchResult) succeed(trackingNumber string) {
	r.Succeeded = append(r.Succeeded, trackingNumber)
}

func (r *BatchResult) fail(trackingNumber string, err error) {
	r.Failed = append(r.Failed, ItemFailure{
		TrackingNumber: trackingNumber,
		Kind:           services.Classify(err),
		Err:            err,
	})
}
