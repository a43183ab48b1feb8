package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"logistics/internal/adapters/out/sqlite"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/core/domain/model/waybill"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march15 = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *sqlite.UnitOfWorkFactory {
	t.Helper()

	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "logistics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return sqlite.NewUnitOfWorkFactory(store)
}

// seed registers zones Norte (5000) and Sur (7500.50), couriers Ana (Norte) and Luis (Sur)
// and waybills GU-1..GU-3.
func seed(t *testing.T, factory *sqlite.UnitOfWorkFactory) {
	t.Helper()
	ctx := context.Background()
	uow := factory.Create()

	for name, rate := range map[string]string{"Norte": "5000", "Sur": "7500.50"} {
		z, err := zone.NewZone(kernel.MustName(name), kernel.MustMoney(rate))
		require.NoError(t, err)
		require.NoError(t, uow.ZoneRepository().Add(ctx, z))
	}
	for name, zoneName := range map[string]string{"Ana": "Norte", "Luis": "Sur"} {
		c, err := courier.NewCourier(kernel.MustName(name), kernel.MustName(zoneName))
		require.NoError(t, err)
		require.NoError(t, uow.CourierRepository().Add(ctx, c))
	}
	for _, tn := range []string{"GU-1", "GU-2", "GU-3"} {
		inserted, err := uow.WaybillRepository().AddIfAbsent(ctx, newWaybill(t, tn, "María"))
		require.NoError(t, err)
		require.True(t, inserted)
	}
}

func newWaybill(t *testing.T, tn, recipient string) *waybill.Waybill {
	t.Helper()
	w, err := waybill.NewWaybill(kernel.MustTrackingNumber(tn), "Tienda", recipient, "Calle 1", "Bogotá")
	require.NoError(t, err)
	return w
}

func newDispatch(t *testing.T, tn, courierName, zoneName string, at time.Time) *dispatch.Dispatch {
	t.Helper()
	d, err := dispatch.RestoreDispatch(kernel.MustTrackingNumber(tn), kernel.MustName(courierName), kernel.MustName(zoneName), at)
	require.NoError(t, err)
	return d
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), "  ")
	require.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logistics.db")

	store, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	factory := openTestStore(t)
	seed(t, factory)
	uow := factory.Create()

	t.Run("duplicate zone", func(t *testing.T) {
		z, _ := zone.NewZone(kernel.MustName("Norte"), kernel.MustMoney("1"))
		require.ErrorIs(t, uow.ZoneRepository().Add(ctx, z), errs.ErrObjectAlreadyExists)
	})

	t.Run("zone rate update", func(t *testing.T) {
		z, err := uow.ZoneRepository().Get(ctx, kernel.MustName("Norte"))
		require.NoError(t, err)
		require.NoError(t, z.ChangeRate(kernel.MustMoney("5200")))
		require.NoError(t, uow.ZoneRepository().Update(ctx, z))

		zones, err := uow.ZoneRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, zones, 2)
		assert.Equal(t, "Norte", zones[0].Name().String())
		assert.True(t, zones[0].Rate().IsEqual(kernel.MustMoney("5200")))
	})

	t.Run("courier with unknown zone", func(t *testing.T) {
		c, _ := courier.NewCourier(kernel.MustName("Pedro"), kernel.MustName("Oeste"))
		require.ErrorIs(t, uow.CourierRepository().Add(ctx, c), errs.ErrObjectNotFound)
	})

	t.Run("duplicate courier", func(t *testing.T) {
		c, _ := courier.NewCourier(kernel.MustName("Ana"), kernel.MustName("Sur"))
		require.ErrorIs(t, uow.CourierRepository().Add(ctx, c), errs.ErrObjectAlreadyExists)
	})

	t.Run("courier reassignment", func(t *testing.T) {
		c, err := uow.CourierRepository().Get(ctx, kernel.MustName("Ana"))
		require.NoError(t, err)
		require.NoError(t, c.Reassign(kernel.MustName("Sur")))
		require.NoError(t, uow.CourierRepository().Update(ctx, c))

		couriers, err := uow.CourierRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, couriers, 2)
		assert.Equal(t, "Sur", couriers[0].Zone().String())
	})

	t.Run("missing rows", func(t *testing.T) {
		_, err := uow.CourierRepository().Get(ctx, kernel.MustName("Nadie"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		z, _ := zone.NewZone(kernel.MustName("Oeste"), kernel.MustMoney("1"))
		require.ErrorIs(t, uow.ZoneRepository().Update(ctx, z), errs.ErrObjectNotFound)
	})
}

func TestWaybills(t *testing.T) {
	ctx := context.Background()
	factory := openTestStore(t)
	seed(t, factory)
	repo := factory.Create().WaybillRepository()

	inserted, err := repo.AddIfAbsent(ctx, newWaybill(t, "GU-1", "Otra persona"))
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := repo.Get(ctx, kernel.MustTrackingNumber("GU-1"))
	require.NoError(t, err)
	assert.Equal(t, "María", got.Recipient())

	_, err = repo.Get(ctx, kernel.MustTrackingNumber("GU-404"))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	found, err := repo.FindExisting(ctx, []kernel.TrackingNumber{
		kernel.MustTrackingNumber("GU-3"),
		kernel.MustTrackingNumber("GU-404"),
		kernel.MustTrackingNumber("GU-1"),
	})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestLifecycleRecords(t *testing.T) {
	ctx := context.Background()
	factory := openTestStore(t)
	seed(t, factory)

	t.Run("transaction rollback", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.DispatchRepository().Add(ctx, newDispatch(t, "GU-1", "Ana", "Norte", march15)))
		require.NoError(t, uow.Rollback(ctx))

		_, err := factory.Create().DispatchRepository().Get(ctx, kernel.MustTrackingNumber("GU-1"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("commit and conflict", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.DispatchRepository().Add(ctx, newDispatch(t, "GU-1", "Ana", "Norte", march15)))
		require.NoError(t, uow.Commit(ctx))

		got, err := factory.Create().DispatchRepository().Get(ctx, kernel.MustTrackingNumber("GU-1"))
		require.NoError(t, err)
		assert.True(t, march15.Equal(got.DispatchedAt()))
		assert.Equal(t, "Norte", got.Zone().String())

		err = factory.Create().DispatchRepository().Add(ctx, newDispatch(t, "GU-1", "Luis", "Sur", march15))
		require.ErrorIs(t, err, services.ErrAlreadyDispatched)
	})

	t.Run("commit without begin", func(t *testing.T) {
		require.ErrorIs(t, factory.Create().Commit(ctx), sqlite.ErrNoTransaction)
	})

	t.Run("reception", func(t *testing.T) {
		repo := factory.Create().ReceptionRepository()
		r, err := reception.NewReception(kernel.MustTrackingNumber("GU-1"), reception.Returned, "Rechazado", march15.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, r))

		got, err := repo.Get(ctx, kernel.MustTrackingNumber("GU-1"))
		require.NoError(t, err)
		assert.Equal(t, reception.Returned, got.Kind())
		assert.Equal(t, "Rechazado", got.Reason())

		require.ErrorIs(t, repo.Add(ctx, r), services.ErrAlreadyReceived)
	})

	t.Run("listings", func(t *testing.T) {
		repo := factory.Create().DispatchRepository()
		require.NoError(t, repo.Add(ctx, newDispatch(t, "GU-2", "Luis", "Sur", march15.Add(time.Hour))))
		require.NoError(t, repo.Add(ctx, newDispatch(t, "GU-3", "Luis", "Sur", march15.Add(-time.Hour))))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "GU-2", all[0].TrackingNumber().String())
		assert.Equal(t, "GU-3", all[2].TrackingNumber().String())

		overdue, err := repo.GetUnreceivedBefore(ctx, march15.Add(2*time.Hour))
		require.NoError(t, err)
		require.Len(t, overdue, 2)
		assert.Equal(t, "GU-3", overdue[0].TrackingNumber().String())
		assert.Equal(t, "GU-2", overdue[1].TrackingNumber().String())
	})

	t.Run("settlement", func(t *testing.T) {
		march, err := kernel.NewDateRange(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		rows, err := factory.SettlementReader().Settle(ctx, nil, march)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Ana", rows[0].Courier.String())
		assert.Equal(t, int64(1), rows[0].Count)
		assert.True(t, rows[0].Total.IsEqual(kernel.MustMoney("5000")))
		assert.Equal(t, "Luis", rows[1].Courier.String())
		assert.Equal(t, int64(2), rows[1].Count)
		assert.True(t, rows[1].Total.IsEqual(kernel.MustMoney("15001")))

		luis := kernel.MustName("Luis")
		rows, err = factory.SettlementReader().Settle(ctx, &luis, march)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}

func TestPickups(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Create().PickupRepository()
	older, err := pickup.NewPickup("INT-1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Portería")
	require.NoError(t, err)
	newer, err := pickup.NewPickup("INT-2", time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, older))
	require.NoError(t, repo.Add(ctx, newer))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "INT-2", all[0].InternalNumber())

	require.NoError(t, older.Update("INT-9", older.Date(), ""))
	require.NoError(t, repo.Update(ctx, older))
	got, err := repo.Get(ctx, older.ID())
	require.NoError(t, err)
	assert.Equal(t, "INT-9", got.InternalNumber())
	assert.Empty(t, got.Notes())

	_, err = repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
