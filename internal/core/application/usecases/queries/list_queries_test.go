package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/clock"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllZonesQueryHandler(t *testing.T) {
	ctx := context.Background()
	r := newRepos()
	norte, _ := zone.NewZone(kernel.MustName("Norte"), kernel.MustMoney("5000.00"))
	sur, _ := zone.NewZone(kernel.MustName("Sur"), kernel.MustMoney("6500.00"))
	r.zones.On("GetAll", ctx).Return([]*zone.Zone{norte, sur}, nil)

	got, err := queries.NewGetAllZonesQueryHandler(r).Handle(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Norte", got[0].Name)
	assert.True(t, got[1].Rate.IsEqual(kernel.MustMoney("6500.00")))
}

func TestGetAllCouriersQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("maps couriers", func(t *testing.T) {
		r := newRepos()
		ana, _ := courier.NewCourier(kernel.MustName("Ana"), kernel.MustName("Norte"))
		r.couriers.On("GetAll", ctx).Return([]*courier.Courier{ana}, nil)

		got, err := queries.NewGetAllCouriersQueryHandler(r).Handle(ctx)

		require.NoError(t, err)
		assert.Equal(t, []queries.CourierResponse{{Name: "Ana", Zone: "Norte"}}, got)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		r := newRepos()
		r.couriers.On("GetAll", ctx).Return([]*courier.Courier{}, nil)

		got, err := queries.NewGetAllCouriersQueryHandler(r).Handle(ctx)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("storage error", func(t *testing.T) {
		r := newRepos()
		r.couriers.On("GetAll", ctx).Return(nil, errors.New("boom"))

		_, err := queries.NewGetAllCouriersQueryHandler(r).Handle(ctx)

		require.Error(t, err)
	})
}

func TestGetAllDispatchesQueryHandler(t *testing.T) {
	ctx := context.Background()
	r := newRepos()
	r.dispatches.On("GetAll", ctx).Return([]*dispatch.Dispatch{
		testDispatch("GU-2", "Ana", "Norte", dispatchedAt.Add(time.Hour)),
		testDispatch("GU-1", "Luis", "Sur", dispatchedAt),
	}, nil)

	got, err := queries.NewGetAllDispatchesQueryHandler(r).Handle(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, queries.DispatchResponse{
		TrackingNumber: "GU-1",
		Courier:        "Luis",
		Zone:           "Sur",
		DispatchedAt:   dispatchedAt,
	}, got[1])
}

func TestGetAllPickupsQueryHandler(t *testing.T) {
	ctx := context.Background()
	r := newRepos()
	p, err := pickup.NewPickup("INT-7", dispatchedAt, "Portería")
	require.NoError(t, err)
	r.pickups.On("GetAll", ctx).Return([]*pickup.Pickup{p}, nil)

	got, err := queries.NewGetAllPickupsQueryHandler(r).Handle(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p.ID(), got[0].ID)
	assert.Equal(t, "INT-7", got[0].InternalNumber)
	assert.Equal(t, kernel.TruncateToDate(dispatchedAt), got[0].Date)
	assert.Equal(t, "Portería", got[0].Notes)
}

func TestGetOverdueDispatchesQueryHandler(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	t.Run("cutoff is now minus age", func(t *testing.T) {
		r := newRepos()
		r.dispatches.On("GetUnreceivedBefore", ctx, now.Add(-72*time.Hour)).Return([]*dispatch.Dispatch{
			testDispatch("GU-1", "Ana", "Norte", dispatchedAt),
		}, nil)
		handler := queries.NewGetOverdueDispatchesQueryHandler(r, clock.NewFixed(now))
		q, err := queries.NewGetOverdueDispatchesQuery(72 * time.Hour)
		require.NoError(t, err)

		got, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "GU-1", got[0].TrackingNumber)
	})

	t.Run("non positive age", func(t *testing.T) {
		_, err := queries.NewGetOverdueDispatchesQuery(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed query", func(t *testing.T) {
		handler := queries.NewGetOverdueDispatchesQueryHandler(newRepos(), clock.NewFixed(now))
		_, err := handler.Handle(ctx, queries.GetOverdueDispatchesQuery{})
		require.ErrorIs(t, err, queries.ErrGetOverdueDispatchesQueryIsNotConstructed)
	})
}
