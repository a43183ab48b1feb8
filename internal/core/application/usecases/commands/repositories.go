// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it writes to.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

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

	ReceptionRepoFactory interface {
		ReceptionRepository() ports.ReceptionRepository
	}

	PickupRepoFactory interface {
		PickupRepository() ports.PickupRepository
	}

	// RegistryUoW manages transactions over the zone and courier registries.
	RegistryUoW interface {
		TxManager
		ZoneRepoFactory
		CourierRepoFactory
	}

	// RegistryUoWFactory creates new registry unit of work instances.
	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// WaybillUoW manages transactions for waybill registration.
	WaybillUoW interface {
		TxManager
		WaybillRepoFactory
	}

	// WaybillUoWFactory creates new waybill unit of work instances.
	WaybillUoWFactory interface {
		Create() WaybillUoW
	}

	// LifecycleUoW covers every relation a dispatch or reception reads before writing.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   w, err := uow.WaybillRepository().Get(ctx, tn)
	//   d, err := uow.DispatchRepository().Get(ctx, tn)
	//   // ... decide and insert
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		WaybillRepoFactory
		CourierRepoFactory
		DispatchRepoFactory
		ReceptionRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// PickupUoW manages transactions for the pickup log. Waybills are read to check
	// internal numbers.
	PickupUoW interface {
		TxManager
		PickupRepoFactory
		WaybillRepoFactory
	}

	// PickupUoWFactory creates new pickup unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// Locker serializes writers of the same tracking number within the process.
	Locker interface {
		Lock(key string) (unlock func())
	}
)

// optional turns a not-found lookup into a nil result.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
