package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances bound to one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.store.sqlDB}
}

// SettlementReader returns the settlement aggregate of the store.
func (f *UnitOfWorkFactory) SettlementReader() ports.SettlementReader {
	return &settlementReader{q: f.store.sqlDB}
}

// UnitOfWork coordinates a SQLite transaction. Repositories obtained before Begin run
// each statement on its own.
type UnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx, err := uow.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	uow.tx = tx
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	err := uow.tx.Commit()
	uow.tx = nil
	return err
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	err := uow.tx.Rollback()
	uow.tx = nil
	return err
}

func (uow *UnitOfWork) conn() querier {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *UnitOfWork) ZoneRepository() ports.ZoneRepository {
	return &zoneRepository{q: uow.conn()}
}

func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &courierRepository{q: uow.conn()}
}

func (uow *UnitOfWork) WaybillRepository() ports.WaybillRepository {
	return &waybillRepository{q: uow.conn()}
}

func (uow *UnitOfWork) DispatchRepository() ports.DispatchRepository {
	return &dispatchRepository{q: uow.conn()}
}

func (uow *UnitOfWork) ReceptionRepository() ports.ReceptionRepository {
	return &receptionRepository{q: uow.conn()}
}

func (uow *UnitOfWork) PickupRepository() ports.PickupRepository {
	return &pickupRepository{q: uow.conn()}
}
