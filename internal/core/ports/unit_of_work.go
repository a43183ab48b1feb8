package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin are bound to the transaction; repositories obtained
// without Begin run each statement on its own, which is what read-only queries use.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	ZoneRepository() ZoneRepository
	CourierRepository() CourierRepository
	WaybillRepository() WaybillRepository
	DispatchRepository() DispatchRepository
	ReceptionRepository() ReceptionRepository
	PickupRepository() PickupRepository
}
