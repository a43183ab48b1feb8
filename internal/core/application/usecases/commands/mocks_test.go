package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/core/domain/model/waybill"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Update(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, name kernel.Name) (*zone.Zone, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, name kernel.Name) (*courier.Courier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockWaybillRepository struct{ mock.Mock }

func (m *MockWaybillRepository) AddIfAbsent(ctx context.Context, w *waybill.Waybill) (bool, error) {
	args := m.Called(ctx, w)
	return args.Bool(0), args.Error(1)
}

func (m *MockWaybillRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*waybill.Waybill, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waybill.Waybill), args.Error(1)
}

func (m *MockWaybillRepository) FindExisting(
	ctx context.Context,
	tns []kernel.TrackingNumber,
) ([]kernel.TrackingNumber, error) {
	args := m.Called(ctx, tns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.TrackingNumber), args.Error(1)
}

type MockDispatchRepository struct{ mock.Mock }

func (m *MockDispatchRepository) Add(ctx context.Context, d *dispatch.Dispatch) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDispatchRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*dispatch.Dispatch, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.Dispatch), args.Error(1)
}

func (m *MockDispatchRepository) GetAll(ctx context.Context) ([]*dispatch.Dispatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dispatch.Dispatch), args.Error(1)
}

func (m *MockDispatchRepository) GetUnreceivedBefore(ctx context.Context, cutoff time.Time) ([]*dispatch.Dispatch, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dispatch.Dispatch), args.Error(1)
}

type MockReceptionRepository struct{ mock.Mock }

func (m *MockReceptionRepository) Add(ctx context.Context, r *reception.Reception) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceptionRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*reception.Reception, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reception.Reception), args.Error(1)
}

type MockPickupRepository struct{ mock.Mock }

func (m *MockPickupRepository) Add(ctx context.Context, p *pickup.Pickup) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPickupRepository) Update(ctx context.Context, p *pickup.Pickup) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pickup.Pickup), args.Error(1)
}

func (m *MockPickupRepository) GetAll(ctx context.Context) ([]*pickup.Pickup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pickup.Pickup), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) WaybillRepository() ports.WaybillRepository {
	args := m.Called()
	return args.Get(0).(ports.WaybillRepository)
}

func (m *MockUoW) DispatchRepository() ports.DispatchRepository {
	args := m.Called()
	return args.Get(0).(ports.DispatchRepository)
}

func (m *MockUoW) ReceptionRepository() ports.ReceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceptionRepository)
}

func (m *MockUoW) PickupRepository() ports.PickupRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRepository)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistryUoW)
}

type MockWaybillUoWFactory struct{ mock.Mock }

func (m *MockWaybillUoWFactory) Create() commands.WaybillUoW {
	args := m.Called()
	return args.Get(0).(commands.WaybillUoW)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockPickupUoWFactory struct{ mock.Mock }

func (m *MockPickupUoWFactory) Create() commands.PickupUoW {
	args := m.Called()
	return args.Get(0).(commands.PickupUoW)
}

type MockStatusCache struct{ mock.Mock }

func (m *MockStatusCache) Get(ctx context.Context, tn kernel.TrackingNumber) (services.Snapshot, bool) {
	args := m.Called(ctx, tn)
	return args.Get(0).(services.Snapshot), args.Bool(1)
}

func (m *MockStatusCache) Set(ctx context.Context, s services.Snapshot) {
	m.Called(ctx, s)
}

func (m *MockStatusCache) Invalidate(ctx context.Context, tns ...kernel.TrackingNumber) {
	m.Called(ctx, tns)
}
