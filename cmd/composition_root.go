package cmd

import (
	"log/slog"

	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/feed"
	"laundry/internal/adapters/out/geo"
	"laundry/internal/adapters/out/notify"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/userrepo"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tracking"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Construction is
// cheap; handlers are built on demand.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *feed.Hub
	notifier   ports.Notifier
	estimator  ports.RouteEstimator
	users      ports.UserRepository
	facility   tracking.Stop
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph shared by the web server and
// the background jobs.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	facilityPoint, err := kernel.NewGeoPoint(config.FacilityLat, config.FacilityLng)
	if err != nil {
		return nil, err
	}

	users := userrepo.NewGormUserRepository(gormDB)

	var notifier ports.Notifier
	if config.SendGridAPIKey != "" {
		notifier, err = notify.NewEmailNotifier(
			config.SendGridAPIKey, config.SenderName, config.SenderEmail, users)
		if err != nil {
			return nil, err
		}
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        feed.NewHub(),
		notifier:   notifier,
		estimator:  geo.NewDefaultEstimator(),
		users:      users,
		facility: tracking.Stop{
			Point:   facilityPoint,
			Address: config.FacilityAddress,
		},
		logger: logger,
	}, nil
}

// Hub exposes the live tracking feed for the SSE endpoint and shutdown.
func (c *CompositionRoot) Hub() *feed.Hub {
	return c.hub
}

// Users exposes the account repository for the HTTP auth handlers.
func (c *CompositionRoot) Users() ports.UserRepository {
	return c.users
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.users)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(
		c.fullUoWFactory(), c.estimator, c.hub, c.notifier, c.facility, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	assigner := c.CreateAssignDriverCommandHandler()
	return commands.NewAdvanceOrderCommandHandler(
		c.orderUoWFactory(), assigner, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverStatusCommandHandler() commands.UpdateDriverStatusCommandHandler {
	return commands.NewUpdateDriverStatusCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.fullUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateUpdateTrackingStatusCommandHandler() commands.UpdateTrackingStatusCommandHandler {
	return commands.NewUpdateTrackingStatusCommandHandler(c.fullUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderFlowQueryHandler() queries.GetOrderFlowQueryHandler {
	return queries.NewGetOrderFlowQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	orders := orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
	assigner := c.CreateAssignDriverCommandHandler()
	sweep := jobs.NewDriverAssignmentJob(orders, assigner, c.logger)
	return jobs.NewJobManager(sweep)
}

// CreateHTTPServer wires the REST facade.
func (c *CompositionRoot) CreateHTTPServer(tokens *httpadapter.TokenService) *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.ServerParams{
		RegisterUserHandler:         c.CreateRegisterUserCommandHandler(),
		CreateOrderHandler:          c.CreateCreateOrderCommandHandler(),
		AdvanceOrderHandler:         c.CreateAdvanceOrderCommandHandler(),
		AssignDriverHandler:         c.CreateAssignDriverCommandHandler(),
		CreateDriverHandler:         c.CreateCreateDriverCommandHandler(),
		UpdateDriverStatusHandler:   c.CreateUpdateDriverStatusCommandHandler(),
		UpdateDriverLocationHandler: c.CreateUpdateDriverLocationCommandHandler(),
		UpdateTrackingStatusHandler: c.CreateUpdateTrackingStatusCommandHandler(),
		GetUserOrdersHandler:        c.CreateGetUserOrdersQueryHandler(),
		GetOrderHandler:             c.CreateGetOrderQueryHandler(),
		GetDriversHandler:           c.CreateGetDriversQueryHandler(),
		GetOrderTrackingHandler:     c.CreateGetOrderTrackingQueryHandler(),
		GetOrderFlowHandler:         c.CreateGetOrderFlowQueryHandler(),
		Users:                       c.users,
		Subscriber:                  c.hub,
		Tokens:                      tokens,
		Support: httpadapter.SupportContact{
			WhatsAppNumber: c.config.SupportWhatsApp,
			PhoneNumber:    c.config.SupportPhone,
			Email:          c.config.SupportEmail,
		},
		Logger: c.logger,
	})
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
