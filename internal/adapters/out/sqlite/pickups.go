package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
	"logistics/internal/pkg/errs"
)

type pickupRepository struct {
	q querier
}

func (r *pickupRepository) Add(ctx context.Context, p *pickup.Pickup) error {
	if err := p.Validate(); err != nil {
		return err
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO pickups (id, internal_number, date, notes, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID().String(), p.InternalNumber(), toMillis(p.Date()), p.Notes(), toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert pickup: %w", err)
	}
	return nil
}

func (r *pickupRepository) Update(ctx context.Context, p *pickup.Pickup) error {
	if err := p.Validate(); err != nil {
		return err
	}

	result, err := r.q.ExecContext(ctx,
		`UPDATE pickups SET internal_number = ?, date = ?, notes = ? WHERE id = ?`,
		p.InternalNumber(), toMillis(p.Date()), p.Notes(), p.ID().String(),
	)
	if err != nil {
		return fmt.Errorf("update pickup: %w", err)
	}
	return requireAffected(result, "pickup", p.ID().String())
}

func (r *pickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, internal_number, date, notes FROM pickups WHERE id = ?`,
		id.String(),
	)
	p, err := scanPickup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("pickup", id.String())
	}
	return p, err
}

func (r *pickupRepository) GetAll(ctx context.Context) ([]*pickup.Pickup, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, internal_number, date, notes FROM pickups ORDER BY date DESC, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list pickups: %w", err)
	}
	return collect(rows, scanPickup)
}

func scanPickup(s scanner) (*pickup.Pickup, error) {
	var (
		rawID, internalNumber, notes string
		date                         int64
	)
	if err := s.Scan(&rawID, &internalNumber, &date, &notes); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return nil, err
	}
	return pickup.RestorePickup(id, internalNumber, fromMillis(date), notes)
}
