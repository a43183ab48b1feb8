package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

type zoneRepository struct {
	q querier
}

func (r *zoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	if err := z.Validate(); err != nil {
		return err
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO zones (name, rate_minor) VALUES (?, ?)`,
		z.Name().String(), z.Rate().Minor(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("zone", z.Name().String(), err)
		}
		return fmt.Errorf("insert zone: %w", err)
	}
	return nil
}

func (r *zoneRepository) Update(ctx context.Context, z *zone.Zone) error {
	if err := z.Validate(); err != nil {
		return err
	}

	result, err := r.q.ExecContext(ctx,
		`UPDATE zones SET rate_minor = ? WHERE name = ?`,
		z.Rate().Minor(), z.Name().String(),
	)
	if err != nil {
		return fmt.Errorf("update zone: %w", err)
	}
	return requireAffected(result, "zone", z.Name().String())
}

func (r *zoneRepository) Get(ctx context.Context, name kernel.Name) (*zone.Zone, error) {
	row := r.q.QueryRowContext(ctx, `SELECT name, rate_minor FROM zones WHERE name = ?`, name.String())
	z, err := scanZone(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("zone", name.String())
	}
	return z, err
}

func (r *zoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT name, rate_minor FROM zones ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	return collect(rows, scanZone)
}

func scanZone(s scanner) (*zone.Zone, error) {
	var (
		name      string
		rateMinor int64
	)
	if err := s.Scan(&name, &rateMinor); err != nil {
		return nil, err
	}

	zoneName, nameErr := kernel.NewName("zone", name)
	rate, rateErr := kernel.NewMoneyFromMinor(rateMinor)
	if err := errors.Join(nameErr, rateErr); err != nil {
		return nil, err
	}
	return zone.RestoreZone(zoneName, rate)
}

type courierRepository struct {
	q querier
}

func (r *courierRepository) Add(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO couriers (name, zone) VALUES (?, ?)`,
		c.Name().String(), c.Zone().String(),
	)
	if err != nil {
		return translateCourierError(err, c)
	}
	return nil
}

func (r *courierRepository) Update(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	result, err := r.q.ExecContext(ctx,
		`UPDATE couriers SET zone = ? WHERE name = ?`,
		c.Zone().String(), c.Name().String(),
	)
	if err != nil {
		return translateCourierError(err, c)
	}
	return requireAffected(result, "courier", c.Name().String())
}

func (r *courierRepository) Get(ctx context.Context, name kernel.Name) (*courier.Courier, error) {
	row := r.q.QueryRowContext(ctx, `SELECT name, zone FROM couriers WHERE name = ?`, name.String())
	c, err := scanCourier(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("courier", name.String())
	}
	return c, err
}

func (r *courierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT name, zone FROM couriers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	return collect(rows, scanCourier)
}

func scanCourier(s scanner) (*courier.Courier, error) {
	var name, zoneName string
	if err := s.Scan(&name, &zoneName); err != nil {
		return nil, err
	}

	courierName, nameErr := kernel.NewName("courier", name)
	z, zoneErr := kernel.NewName("zone", zoneName)
	if err := errors.Join(nameErr, zoneErr); err != nil {
		return nil, err
	}
	return courier.RestoreCourier(courierName, z)
}

func translateCourierError(err error, c *courier.Courier) error {
	switch {
	case isUniqueViolation(err):
		return errs.NewObjectAlreadyExistsErrorWithCause("courier", c.Name().String(), err)
	case isForeignKeyViolation(err):
		return errs.NewObjectNotFoundErrorWithCause("zone", c.Zone().String(), err)
	default:
		return fmt.Errorf("write courier: %w", err)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

// collect scans every row and closes rows.
func collect[T any](rows *sql.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func requireAffected(result sql.Result, what, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.NewObjectNotFoundError(what, id)
	}
	return nil
}
