package cmd

import (
	"log/slog"

	httpin "logitrack/internal/adapters/in/http"
	"logitrack/internal/adapters/out/payment"
	"logitrack/internal/adapters/out/postgres"
	"logitrack/internal/adapters/out/postgres/companyrepo"
	"logitrack/internal/adapters/out/postgres/notificationrepo"
	"logitrack/internal/core/application/usecases/commands"
	"logitrack/internal/core/application/usecases/queries"
	"logitrack/internal/jobs"
	"logitrack/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and the notification hub. All
// construction happens here so the rest of the code depends on interfaces.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	inbox      notifications.Repository
	hub        *notifications.Hub
	payments   *payment.Client
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	inbox := notificationrepo.NewGormNotificationRepository(gormDB)

	// The hub reads actors outside any transaction.
	hub := notifications.NewHub(uowFactory.Create().ActorRepository(), inbox, logger)

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: uowFactory,
		inbox:      inbox,
		hub:        hub,
		payments:   payment.NewClient(config.PaymentServiceURL, logger),
		logger:     logger,
	}
}

// Hub exposes the notification hub for the HTTP layer and shutdown.
func (c *CompositionRoot) Hub() *notifications.Hub {
	return c.hub
}

// Close shuts down the hub, draining queued changes first.
func (c *CompositionRoot) Close() {
	c.hub.Close()
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.payments, c.hub)
}

func (c *CompositionRoot) CreateTransitionParcelCommandHandler() commands.TransitionParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionParcelCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	companies := companyrepo.NewGormCompanyRepository(c.gormDB)
	return commands.NewAssignDriverCommandHandler(f, companies, c.hub)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetParcelHistoryQueryHandler(
		uow.ParcelRepository(), uow.ActorRepository(), uow.TrackingLedger())
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewTrackParcelQueryHandler(uow.ParcelRepository(), uow.TrackingLedger())
}

func (c *CompositionRoot) CreateGetDriverRouteQueryHandler() queries.GetDriverRouteQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetDriverRouteQueryHandler(uow.ParcelRepository(), uow.ActorRepository())
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST API surface.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateTransitionParcelCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateListParcelsQueryHandler(),
		c.CreateGetParcelHistoryQueryHandler(),
		c.CreateTrackParcelQueryHandler(),
		c.CreateGetDriverRouteQueryHandler(),
		c.CreateGetDashboardStatsQueryHandler(),
		c.hub,
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.inbox, c.logger)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
