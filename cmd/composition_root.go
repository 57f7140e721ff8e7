package cmd

import (
	"log/slog"
	"time"

	"parcel/internal/adapters/out/postgres"
	"parcel/internal/adapters/out/postgres/accountrepo"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		accountrepo.NewGormAccountDirectory(c.gormDB),
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusByAgentCommandHandler() commands.UpdateOrderStatusByAgentCommandHandler {
	return commands.NewUpdateOrderStatusByAgentCommandHandler(
		c.orderUoWFactory(),
		accountrepo.NewGormAgentDirectory(c.gormDB),
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusBySenderCommandHandler() commands.UpdateOrderStatusBySenderCommandHandler {
	return commands.NewUpdateOrderStatusBySenderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryAgentCommandHandler() commands.AssignDeliveryAgentCommandHandler {
	return commands.NewAssignDeliveryAgentCommandHandler(
		c.orderUoWFactory(),
		accountrepo.NewGormAgentDirectory(c.gormDB),
	)
}

func (c *CompositionRoot) CreateCloseSettledOrdersCommandHandler() commands.CloseSettledOrdersCommandHandler {
	return commands.NewCloseSettledOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetSenderOrdersQueryHandler() queries.GetSenderOrdersQueryHandler {
	return queries.NewGetSenderOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(retention, interval time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCloseSettledOrdersCommandHandler(),
		retention,
		interval,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
