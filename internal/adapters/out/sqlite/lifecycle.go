package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/core/domain/model/waybill"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

const findExistingChunk = 500

type waybillRepository struct {
	q querier
}

func (r *waybillRepository) AddIfAbsent(ctx context.Context, w *waybill.Waybill) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}

	result, err := r.q.ExecContext(ctx,
		`INSERT INTO waybills (tracking_number, sender, recipient, address, city, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (tracking_number) DO NOTHING`,
		w.TrackingNumber().String(), w.Sender(), w.Recipient(), w.Address(), w.City(), toMillis(time.Now()),
	)
	if err != nil {
		return false, fmt.Errorf("insert waybill: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *waybillRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*waybill.Waybill, error) {
	var sender, recipient, address, city string
	err := r.q.QueryRowContext(ctx,
		`SELECT sender, recipient, address, city FROM waybills WHERE tracking_number = ?`,
		tn.String(),
	).Scan(&sender, &recipient, &address, &city)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("waybill", tn.String())
	}
	if err != nil {
		return nil, fmt.Errorf("get waybill: %w", err)
	}

	return waybill.RestoreWaybill(tn, sender, recipient, address, city)
}

func (r *waybillRepository) FindExisting(ctx context.Context, tns []kernel.TrackingNumber) ([]kernel.TrackingNumber, error) {
	found := make([]kernel.TrackingNumber, 0, len(tns))
	for start := 0; start < len(tns); start += findExistingChunk {
		chunk := tns[start:min(start+findExistingChunk, len(tns))]
		args := make([]any, 0, len(chunk))
		for _, tn := range chunk {
			args = append(args, tn.String())
		}

		rows, err := r.q.QueryContext(ctx,
			`SELECT tracking_number FROM waybills WHERE tracking_number IN (`+placeholders(len(args))+`)`,
			args...,
		)
		if err != nil {
			return nil, fmt.Errorf("find waybills: %w", err)
		}
		existing, err := collect(rows, func(s scanner) (kernel.TrackingNumber, error) {
			var value string
			if err := s.Scan(&value); err != nil {
				return kernel.TrackingNumber{}, err
			}
			return kernel.NewTrackingNumber(value)
		})
		if err != nil {
			return nil, err
		}
		found = append(found, existing...)
	}
	return found, nil
}

type dispatchRepository struct {
	q querier
}

const dispatchColumns = `d.tracking_number, d.courier, d.zone, d.dispatched_at`

func (r *dispatchRepository) Add(ctx context.Context, d *dispatch.Dispatch) error {
	if err := d.Validate(); err != nil {
		return err
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO dispatches (tracking_number, courier, zone, dispatched_at) VALUES (?, ?, ?, ?)`,
		d.TrackingNumber().String(), d.Courier().String(), d.Zone().String(), toMillis(d.DispatchedAt()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return services.NewAlreadyDispatchedError(d.TrackingNumber(), kernel.Name{})
		}
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

func (r *dispatchRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*dispatch.Dispatch, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+dispatchColumns+` FROM dispatches d WHERE d.tracking_number = ?`,
		tn.String(),
	)
	d, err := scanDispatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("dispatch", tn.String())
	}
	return d, err
}

func (r *dispatchRepository) GetAll(ctx context.Context) ([]*dispatch.Dispatch, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+dispatchColumns+` FROM dispatches d ORDER BY d.dispatched_at DESC, d.tracking_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}
	return collect(rows, scanDispatch)
}

func (r *dispatchRepository) GetUnreceivedBefore(ctx context.Context, cutoff time.Time) ([]*dispatch.Dispatch, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+dispatchColumns+`
		 FROM dispatches d
		 LEFT JOIN receptions r ON r.tracking_number = d.tracking_number
		 WHERE r.tracking_number IS NULL AND d.dispatched_at < ?
		 ORDER BY d.dispatched_at, d.tracking_number`,
		toMillis(cutoff),
	)
	if err != nil {
		return nil, fmt.Errorf("list unreceived dispatches: %w", err)
	}
	return collect(rows, scanDispatch)
}

func scanDispatch(s scanner) (*dispatch.Dispatch, error) {
	var (
		tn, courierName, zoneName string
		dispatchedAt              int64
	)
	if err := s.Scan(&tn, &courierName, &zoneName, &dispatchedAt); err != nil {
		return nil, err
	}

	trackingNumber, tnErr := kernel.NewTrackingNumber(tn)
	c, courierErr := kernel.NewName("courier", courierName)
	z, zoneErr := kernel.NewName("zone", zoneName)
	if err := errors.Join(tnErr, courierErr, zoneErr); err != nil {
		return nil, err
	}
	return dispatch.RestoreDispatch(trackingNumber, c, z, fromMillis(dispatchedAt))
}

type receptionRepository struct {
	q querier
}

func (r *receptionRepository) Add(ctx context.Context, rec *reception.Reception) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO receptions (tracking_number, kind, reason, received_at) VALUES (?, ?, ?, ?)`,
		rec.TrackingNumber().String(), rec.Kind().String(), rec.Reason(), toMillis(rec.ReceivedAt()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return services.NewAlreadyReceivedError(rec.TrackingNumber(), reception.KindUnknown)
		}
		return fmt.Errorf("insert reception: %w", err)
	}
	return nil
}

func (r *receptionRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*reception.Reception, error) {
	var (
		kindName, reason string
		receivedAt       int64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT kind, reason, received_at FROM receptions WHERE tracking_number = ?`,
		tn.String(),
	).Scan(&kindName, &reason, &receivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("reception", tn.String())
	}
	if err != nil {
		return nil, fmt.Errorf("get reception: %w", err)
	}

	kind, err := reception.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	return reception.RestoreReception(tn, kind, reason, fromMillis(receivedAt))
}
