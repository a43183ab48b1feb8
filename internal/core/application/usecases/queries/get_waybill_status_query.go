package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetWaybillStatusQueryIsNotConstructed = errors.New(
	"GetWaybillStatusQuery must be created via NewGetWaybillStatusQuery constructor",
)

// GetWaybillStatusQuery resolves the lifecycle state of one tracking number.
type GetWaybillStatusQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

func NewGetWaybillStatusQuery(trackingNumber string) (GetWaybillStatusQuery, error) {
	tn, err := kernel.NewTrackingNumber(trackingNumber)
	if err != nil {
		return GetWaybillStatusQuery{}, err
	}

	return GetWaybillStatusQuery{
		trackingNumber: tn,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetWaybillStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetWaybillStatusQueryIsNotConstructed)
}

func (q GetWaybillStatusQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}
