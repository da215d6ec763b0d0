package cmd

import (
	"log/slog"

	"livraison/internal/adapters/out/changefeed"
	"livraison/internal/adapters/out/notify"
	"livraison/internal/adapters/out/postgres"
	"livraison/internal/core/application/usecases/commands"
	"livraison/internal/core/application/usecases/queries"
	"livraison/internal/core/domain/services"
	"livraison/internal/core/ports"
	"livraison/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. The change feed,
// notifier and domain services are singletons: every handler created here
// shares them, so subscribers see one ordered feed regardless of which
// endpoint committed the transition.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	accessGuard services.AccessGuard
	ledger      services.InventoryLedger
	feed        *changefeed.InProcessFeed
	notifier    *notify.SlogNotifier
	logger      *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		accessGuard: services.NewAccessGuard(),
		ledger:      services.NewInventoryLedger(),
		feed:        changefeed.NewInProcessFeed(logger),
		notifier:    notify.NewSlogNotifier(logger),
		logger:      logger,
	}
}

// ChangeFeed exposes the shared feed so main can attach consumers.
func (c *CompositionRoot) ChangeFeed() ports.ChangePublisher {
	return c.feed
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.accessGuard, c.feed, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.accessGuard, c.feed, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateTransitionDeliveryCommandHandler() commands.TransitionDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionDeliveryCommandHandler(f, c.accessGuard, c.ledger, c.feed, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateStockItemCommandHandler() commands.CreateStockItemCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStockItemCommandHandler(f, c.accessGuard)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f, c.accessGuard)
}

func (c *CompositionRoot) CreateResolveIncidentCommandHandler() commands.ResolveIncidentCommandHandler {
	var f commands.IncidentUoWFactory = FuncIncidentUoWFactory(func() commands.IncidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveIncidentCommandHandler(f, c.accessGuard)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverDeliveriesQueryHandler() queries.GetDriverDeliveriesQueryHandler {
	return queries.NewGetDriverDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockQueryHandler() queries.GetLowStockQueryHandler {
	return queries.NewGetLowStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnresolvedIncidentsQueryHandler() queries.GetUnresolvedIncidentsQueryHandler {
	return queries.NewGetUnresolvedIncidentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueDeliveriesQueryHandler() queries.GetOverdueDeliveriesQueryHandler {
	return queries.NewGetOverdueDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOverdueDeliveriesQueryHandler(),
		c.CreateGetLowStockQueryHandler(),
		c.logger,
	)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncIncidentUoWFactory func() commands.IncidentUoW

func (f FuncIncidentUoWFactory) Create() commands.IncidentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
