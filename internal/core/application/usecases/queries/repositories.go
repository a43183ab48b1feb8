// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the presentation layer.
package queries

import (
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Repository factories give query handlers repositories that run outside any transaction.
// A ports.UnitOfWork on which Begin was never called satisfies all of them.
type (
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	WaybillRepoFactory interface {
		WaybillRepository() ports.WaybillRepository
	}

	DispatchRepoFactory interface {
		DispatchRepository() ports.DispatchRepository
	}

	PickupRepoFactory interface {
		PickupRepository() ports.PickupRepository
	}

	// StatusRepoFactory exposes the three relations a status is resolved from.
	StatusRepoFactory interface {
		WaybillRepoFactory
		DispatchRepoFactory
		ReceptionRepository() ports.ReceptionRepository
	}
)

func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
