package commands_test

import (
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/core/domain/model/waybill"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/clock"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/keylock"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func notFound(what string) error {
	return errs.NewObjectNotFoundError(what, "x")
}

func newTestWaybill(tn string) *waybill.Waybill {
	w, err := waybill.NewWaybill(kernel.MustTrackingNumber(tn), "Tienda", "María", "Calle 1", "Bogotá")
	if err != nil {
		panic(err)
	}
	return w
}

func newTestCourier(name, zone string) *courier.Courier {
	c, err := courier.NewCourier(kernel.MustName(name), kernel.MustName(zone))
	if err != nil {
		panic(err)
	}
	return c
}

func newTestDispatch(tn string, c *courier.Courier) *dispatch.Dispatch {
	d, err := dispatch.NewDispatch(kernel.MustTrackingNumber(tn), c, fixedNow.Add(-time.Hour))
	if err != nil {
		panic(err)
	}
	return d
}

func newTestReception(tn string, kind reception.Kind) *reception.Reception {
	r, err := reception.NewReception(kernel.MustTrackingNumber(tn), kind, "reason", fixedNow)
	if err != nil {
		panic(err)
	}
	return r
}

// lifecycleStore wires one MockUoW and its repositories for lifecycle handler tests.
// Expectations are repeatable so batch tests can describe state per tracking number
// instead of call order.
type lifecycleStore struct {
	uow        *MockUoW
	factory    *MockLifecycleUoWFactory
	waybills   *MockWaybillRepository
	couriers   *MockCourierRepository
	dispatches *MockDispatchRepository
	receptions *MockReceptionRepository
	cache      *MockStatusCache

	dispatchCall *mock.Call
}

func newLifecycleStore() *lifecycleStore {
	s := &lifecycleStore{
		uow:        new(MockUoW),
		factory:    new(MockLifecycleUoWFactory),
		waybills:   new(MockWaybillRepository),
		couriers:   new(MockCourierRepository),
		dispatches: new(MockDispatchRepository),
		receptions: new(MockReceptionRepository),
		cache:      new(MockStatusCache),
	}

	s.factory.On("Create").Return(s.uow)
	s.uow.On("Begin", mock.Anything).Return(nil)
	s.uow.On("Rollback", mock.Anything).Return(nil)
	s.uow.On("WaybillRepository").Return(s.waybills)
	s.uow.On("CourierRepository").Return(s.couriers)
	s.dispatchCall = s.uow.On("DispatchRepository").Return(s.dispatches)
	s.uow.On("ReceptionRepository").Return(s.receptions)
	s.cache.On("Invalidate", mock.Anything, mock.Anything).Return()

	return s
}

func (s *lifecycleStore) withWaybill(tn string, w *waybill.Waybill) {
	if w == nil {
		s.waybills.On("Get", mock.Anything, kernel.MustTrackingNumber(tn)).Return(nil, notFound("waybill"))
		return
	}
	s.waybills.On("Get", mock.Anything, kernel.MustTrackingNumber(tn)).Return(w, nil)
}

func (s *lifecycleStore) withDispatch(tn string, d *dispatch.Dispatch) {
	if d == nil {
		s.dispatches.On("Get", mock.Anything, kernel.MustTrackingNumber(tn)).Return(nil, notFound("dispatch"))
		return
	}
	s.dispatches.On("Get", mock.Anything, kernel.MustTrackingNumber(tn)).Return(d, nil)
}

func (s *lifecycleStore) withReception(tn string, r *reception.Reception) {
	if r == nil {
		s.receptions.On("Get", mock.Anything, kernel.MustTrackingNumber(tn)).Return(nil, notFound("reception"))
		return
	}
	s.receptions.On("Get", mock.Anything, kernel.MustTrackingNumber(tn)).Return(r, nil)
}

func (s *lifecycleStore) withCourier(name string, c *courier.Courier) {
	if c == nil {
		s.couriers.On("Get", mock.Anything, kernel.MustName(name)).Return(nil, notFound("courier"))
		return
	}
	s.couriers.On("Get", mock.Anything, kernel.MustName(name)).Return(c, nil)
}

func (s *lifecycleStore) dispatchHandler() commands.DispatchWaybillCommandHandler {
	return commands.NewDispatchWaybillCommandHandler(
		s.factory, services.NewLifecycle(), keylock.New(), clock.NewFixed(fixedNow), s.cache,
	)
}

func (s *lifecycleStore) receiveHandler() commands.ReceiveWaybillCommandHandler {
	return commands.NewReceiveWaybillCommandHandler(
		s.factory, services.NewLifecycle(), keylock.New(), clock.NewFixed(fixedNow), s.cache,
	)
}

func trackingNumberIs(tn string) any {
	return mock.MatchedBy(func(v interface{ TrackingNumber() kernel.TrackingNumber }) bool {
		return v.TrackingNumber().String() == tn
	})
}
