package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/rediscache"
	"logistics/internal/adapters/out/sqlite"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/pkg/clock"
	"logistics/internal/pkg/keylock"

	"github.com/labstack/echo/v4"
)

// Storage is the backend every use case runs on.
type Storage interface {
	ports.UnitOfWorkFactory
	SettlementReader() ports.SettlementReader
}

type CompositionRoot struct {
	cfg       Config
	storage   Storage
	cache     ports.StatusCache
	clock     clock.Clock
	locker    *keylock.Locker
	lifecycle services.Lifecycle
	logger    *slog.Logger

	// reads never begins a transaction, so every query handler can share it.
	reads  ports.UnitOfWork
	status queries.GetWaybillStatusQueryHandler
}

func NewCompositionRoot(
	cfg Config,
	storage Storage,
	cache ports.StatusCache,
	clk clock.Clock,
	logger *slog.Logger,
) *CompositionRoot {
	c := &CompositionRoot{
		cfg:       cfg,
		storage:   storage,
		cache:     cache,
		clock:     clk,
		locker:    keylock.New(),
		lifecycle: services.NewLifecycle(),
		logger:    logger,
		reads:     storage.Create(),
	}
	c.status = queries.NewGetWaybillStatusQueryHandler(c.reads, c.lifecycle, c.cache)
	return c
}

// OpenStorage connects to the backend selected by STORAGE_DRIVER and migrates it. The
// returned function releases the connection.
func OpenStorage(ctx context.Context, cfg Config) (Storage, func() error, error) {
	switch cfg.StorageDriver {
	case StoragePostgres:
		db, err := postgres.Open(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewGormUnitOfWorkFactory(db), sqlDB.Close, nil
	case StorageSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewUnitOfWorkFactory(store), store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// OpenStatusCache connects to Redis when REDIS_ADDR is set; otherwise status lookups
// always go to storage.
func OpenStatusCache(ctx context.Context, cfg Config, logger *slog.Logger) (ports.StatusCache, func() error, error) {
	if cfg.RedisAddr == "" {
		return rediscache.NoCache{}, func() error { return nil }, nil
	}

	rdb, err := rediscache.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	return rediscache.NewStatusCache(rdb, cfg.StatusCacheTTL, logger), rdb.Close, nil
}

func (c *CompositionRoot) registryUoWFactory() commands.RegistryUoWFactory {
	return FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.storage.Create()
	})
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.storage.Create()
	})
}

func (c *CompositionRoot) pickupUoWFactory() commands.PickupUoWFactory {
	return FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.storage.Create()
	})
}

func (c *CompositionRoot) pickupPolicy() commands.PickupPolicy {
	return commands.PickupPolicy{RequireWaybill: c.cfg.PickupRequireWaybill}
}

func (c *CompositionRoot) CreateRegisterZoneCommandHandler() commands.RegisterZoneCommandHandler {
	return commands.NewRegisterZoneCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateZoneRateCommandHandler() commands.UpdateZoneRateCommandHandler {
	return commands.NewUpdateZoneRateCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	return commands.NewRegisterCourierCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateReassignCourierCommandHandler() commands.ReassignCourierCommandHandler {
	return commands.NewReassignCourierCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateRegisterWaybillsCommandHandler() commands.RegisterWaybillsCommandHandler {
	var f commands.WaybillUoWFactory = FuncWaybillUoWFactory(func() commands.WaybillUoW {
		return c.storage.Create()
	})
	return commands.NewRegisterWaybillsCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateDispatchWaybillCommandHandler() commands.DispatchWaybillCommandHandler {
	return commands.NewDispatchWaybillCommandHandler(c.lifecycleUoWFactory(), c.lifecycle, c.locker, c.clock, c.cache)
}

func (c *CompositionRoot) CreateDispatchWaybillsCommandHandler() commands.DispatchWaybillsCommandHandler {
	return commands.NewDispatchWaybillsCommandHandler(c.CreateDispatchWaybillCommandHandler())
}

func (c *CompositionRoot) CreateReceiveWaybillCommandHandler() commands.ReceiveWaybillCommandHandler {
	return commands.NewReceiveWaybillCommandHandler(c.lifecycleUoWFactory(), c.lifecycle, c.locker, c.clock, c.cache)
}

func (c *CompositionRoot) CreateReceiveWaybillsCommandHandler() commands.ReceiveWaybillsCommandHandler {
	return commands.NewReceiveWaybillsCommandHandler(c.CreateReceiveWaybillCommandHandler())
}

func (c *CompositionRoot) CreateRegisterPickupCommandHandler() commands.RegisterPickupCommandHandler {
	return commands.NewRegisterPickupCommandHandler(c.pickupUoWFactory(), c.pickupPolicy())
}

func (c *CompositionRoot) CreateUpdatePickupCommandHandler() commands.UpdatePickupCommandHandler {
	return commands.NewUpdatePickupCommandHandler(c.pickupUoWFactory(), c.pickupPolicy())
}

func (c *CompositionRoot) CreateGetWaybillStatusQueryHandler() queries.GetWaybillStatusQueryHandler {
	return c.status
}

func (c *CompositionRoot) CreateGetWaybillStatusesQueryHandler() queries.GetWaybillStatusesQueryHandler {
	return queries.NewGetWaybillStatusesQueryHandler(c.status)
}

func (c *CompositionRoot) CreateVerifyWaybillsQueryHandler() queries.VerifyWaybillsQueryHandler {
	return queries.NewVerifyWaybillsQueryHandler(c.reads)
}

func (c *CompositionRoot) CreateGetSettlementQueryHandler() queries.GetSettlementQueryHandler {
	return queries.NewGetSettlementQueryHandler(c.storage.SettlementReader())
}

func (c *CompositionRoot) CreateGetOverdueDispatchesQueryHandler() queries.GetOverdueDispatchesQueryHandler {
	return queries.NewGetOverdueDispatchesQueryHandler(c.reads, c.clock)
}

func (c *CompositionRoot) CreateGetAllZonesQueryHandler() queries.GetAllZonesQueryHandler {
	return queries.NewGetAllZonesQueryHandler(c.reads)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.reads)
}

func (c *CompositionRoot) CreateGetAllDispatchesQueryHandler() queries.GetAllDispatchesQueryHandler {
	return queries.NewGetAllDispatchesQueryHandler(c.reads)
}

func (c *CompositionRoot) CreateGetAllPickupsQueryHandler() queries.GetAllPickupsQueryHandler {
	return queries.NewGetAllPickupsQueryHandler(c.reads)
}

// CreateRouter wires every use case behind the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(
		httpadapter.CommandHandlers{
			RegisterZone:     c.CreateRegisterZoneCommandHandler(),
			UpdateZoneRate:   c.CreateUpdateZoneRateCommandHandler(),
			RegisterCourier:  c.CreateRegisterCourierCommandHandler(),
			ReassignCourier:  c.CreateReassignCourierCommandHandler(),
			RegisterWaybills: c.CreateRegisterWaybillsCommandHandler(),
			DispatchWaybill:  c.CreateDispatchWaybillCommandHandler(),
			DispatchWaybills: c.CreateDispatchWaybillsCommandHandler(),
			ReceiveWaybill:   c.CreateReceiveWaybillCommandHandler(),
			ReceiveWaybills:  c.CreateReceiveWaybillsCommandHandler(),
			RegisterPickup:   c.CreateRegisterPickupCommandHandler(),
			UpdatePickup:     c.CreateUpdatePickupCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetWaybillStatus:     c.CreateGetWaybillStatusQueryHandler(),
			GetWaybillStatuses:   c.CreateGetWaybillStatusesQueryHandler(),
			VerifyWaybills:       c.CreateVerifyWaybillsQueryHandler(),
			GetSettlement:        c.CreateGetSettlementQueryHandler(),
			GetOverdueDispatches: c.CreateGetOverdueDispatchesQueryHandler(),
			GetAllZones:          c.CreateGetAllZonesQueryHandler(),
			GetAllCouriers:       c.CreateGetAllCouriersQueryHandler(),
			GetAllDispatches:     c.CreateGetAllDispatchesQueryHandler(),
			GetAllPickups:        c.CreateGetAllPickupsQueryHandler(),
		},
		c.cfg.OverdueAfter,
		c.logger,
	)
	return httpadapter.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetSettlementQueryHandler(),
		c.CreateGetOverdueDispatchesQueryHandler(),
		c.clock,
		jobs.Schedules{
			SettlementReport: c.cfg.SettlementReportSchedule,
			OverdueReport:    c.cfg.OverdueReportSchedule,
			OverdueAfter:     c.cfg.OverdueAfter,
		},
		c.logger,
	)
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncWaybillUoWFactory func() commands.WaybillUoW

func (f FuncWaybillUoWFactory) Create() commands.WaybillUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}
