package cmd

import (
	"log/slog"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/kafka"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/roles"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"
	"freight/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	reader     *postgres.Reader
	clock      ports.Clock
	publisher  *kafka.EventPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		reader:     postgres.NewReader(gormDB),
		clock:      clock.NewSystem(),
		publisher:  kafka.NewEventPublisher(config.KafkaHost, config.KafkaEventsTopic),
	}
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

// CreateRoleRegistry wires every role-gated use case.
func (c *CompositionRoot) CreateRoleRegistry() *roles.Registry {
	f := c.commandUoWFactory()
	return roles.NewRegistry(roles.Handlers{
		CreateLoad:          commands.NewCreateLoadCommandHandler(f, c.clock),
		PlaceBid:            commands.NewPlaceBidCommandHandler(f, c.clock),
		MarkNotInterested:   commands.NewMarkNotInterestedCommandHandler(f, c.clock),
		AcceptBid:           commands.NewAcceptBidCommandHandler(f, c.clock),
		StartTransit:        commands.NewStartTransitCommandHandler(f, c.clock),
		MarkDelivered:       commands.NewMarkDeliveredCommandHandler(f, c.clock),
		RateCarrier:         commands.NewRateCarrierCommandHandler(f, c.clock),
		AddVehicle:          commands.NewAddVehicleCommandHandler(f, c.clock),
		UpdateVehicle:       commands.NewUpdateVehicleDetailsCommandHandler(f, c.clock),
		UpdateVehicleStatus: commands.NewUpdateVehicleStatusCommandHandler(f),
		MarkMaintenance:     commands.NewMarkMaintenanceCommandHandler(f),
		RemoveVehicle:       commands.NewRemoveVehicleCommandHandler(f, c.clock),

		EligibleLoads:     queries.NewEligibleLoadsQueryHandler(c.reader, c.clock),
		LoadDetail:        queries.NewLoadDetailQueryHandler(c.reader, c.clock),
		EligibleVehicles:  queries.NewEligibleVehiclesQueryHandler(c.reader, c.clock),
		ListCarrierBids:   queries.NewListCarrierBidsQueryHandler(c.gormDB),
		CarrierBidDetail:  queries.NewCarrierBidDetailQueryHandler(c.reader, c.clock),
		ListShipperLoads:  queries.NewListShipperLoadsQueryHandler(c.gormDB),
		ShipperLoadDetail: queries.NewShipperLoadDetailQueryHandler(c.reader),
		BidsForLoad:       queries.NewBidsForLoadQueryHandler(c.reader, c.gormDB),
		ShipperBidDetail:  queries.NewShipperBidDetailQueryHandler(c.reader, c.clock),
		ListVehicles:      queries.NewListVehiclesQueryHandler(c.reader),
		VehicleDetail:     queries.NewVehicleDetailQueryHandler(c.reader),
	})
}

func (c *CompositionRoot) CreateRegisterCarrierCommandHandler() commands.RegisterCarrierCommandHandler {
	return commands.NewRegisterCarrierCommandHandler(c.commandUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRegisterShipperCommandHandler() commands.RegisterShipperCommandHandler {
	return commands.NewRegisterShipperCommandHandler(c.commandUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateLoadsByStatusQueryHandler() queries.LoadsByStatusQueryHandler {
	return queries.NewLoadsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relay, err := jobs.NewOutboxRelayJob(c.CreateRelayOutboxCommandHandler(), c.config.OutboxBatchSize, c.logger)
	if err != nil {
		return nil, err
	}
	stats := jobs.NewMarketplaceStatsJob(c.CreateLoadsByStatusQueryHandler(), c.logger)
	return jobs.NewJobManager(relay, stats), nil
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpin.NewServer(
		c.CreateRoleRegistry(),
		c.CreateRegisterCarrierCommandHandler(),
		c.CreateRegisterShipperCommandHandler(),
	)
	return httpin.NewRouter(server, []byte(c.config.JWTSecret), c.logger)
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
