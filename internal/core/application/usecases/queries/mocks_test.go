package queries_test

import (
	"context"
	"time"

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

// repos hands out the same repository mocks every time, the way a unit of work without a
// transaction does.
type repos struct {
	zones      *MockZoneRepository
	couriers   *MockCourierRepository
	waybills   *MockWaybillRepository
	dispatches *MockDispatchRepository
	receptions *MockReceptionRepository
	pickups    *MockPickupRepository
}

func newRepos() repos {
	return repos{
		zones:      &MockZoneRepository{},
		couriers:   &MockCourierRepository{},
		waybills:   &MockWaybillRepository{},
		dispatches: &MockDispatchRepository{},
		receptions: &MockReceptionRepository{},
		pickups:    &MockPickupRepository{},
	}
}

func (r repos) ZoneRepository() ports.ZoneRepository           { return r.zones }
func (r repos) CourierRepository() ports.CourierRepository     { return r.couriers }
func (r repos) WaybillRepository() ports.WaybillRepository     { return r.waybills }
func (r repos) DispatchRepository() ports.DispatchRepository   { return r.dispatches }
func (r repos) ReceptionRepository() ports.ReceptionRepository { return r.receptions }
func (r repos) PickupRepository() ports.PickupRepository       { return r.pickups }

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

type MockSettlementReader struct{ mock.Mock }

func (m *MockSettlementReader) Settle(
	ctx context.Context,
	courier *kernel.Name,
	period kernel.DateRange,
) ([]ports.SettlementRow, error) {
	args := m.Called(ctx, courier, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.SettlementRow), args.Error(1)
}
