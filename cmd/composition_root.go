package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/menurepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

const (
	defaultDispatchLatencyMin = 15
	defaultEscalateAfterMin   = 30
)

type CompositionRoot struct {
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	logger            *slog.Logger
	notifier          *notifier.LogOrderNotifier
	ticketFactory     services.TicketFactory
	queuePlanner      services.QueuePlanner
	dispatcher        services.CourierDispatcher
	escalateAfter     time.Duration
	autoAssignEnabled bool
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	dispatchLatency := time.Duration(minutesOrDefault(config.DispatchLatencyMin, defaultDispatchLatencyMin)) * time.Minute
	escalateAfter := time.Duration(minutesOrDefault(config.EscalateAfterMin, defaultEscalateAfterMin)) * time.Minute

	return CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:            logger,
		notifier:          notifier.NewLogOrderNotifier(logger),
		ticketFactory:     services.NewTicketFactory(services.NewDefaultDepartmentRouter()),
		queuePlanner:      services.NewQueuePlanner(dispatchLatency),
		dispatcher:        services.NewCourierDispatcher(),
		escalateAfter:     escalateAfter,
		autoAssignEnabled: config.AutoAssignEnabled != "false",
	}
}

func minutesOrDefault(raw string, fallback int) int {
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return fallback
	}
	return minutes
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, menurepo.NewGormMenuCatalog(c.gormDB))
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCreateKitchenTicketsCommandHandler() commands.CreateKitchenTicketsCommandHandler {
	var f commands.TicketingUoWFactory = FuncTicketingUoWFactory(func() commands.TicketingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateKitchenTicketsCommandHandler(f, c.ticketFactory)
}

func (c *CompositionRoot) CreateAdvanceTicketItemCommandHandler() commands.AdvanceTicketItemCommandHandler {
	var f commands.TicketingUoWFactory = FuncTicketingUoWFactory(func() commands.TicketingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceTicketItemCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignChefCommandHandler() commands.AssignChefCommandHandler {
	var f commands.TicketingUoWFactory = FuncTicketingUoWFactory(func() commands.TicketingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignChefCommandHandler(f)
}

func (c *CompositionRoot) CreateReprioritizeOrderCommandHandler() commands.ReprioritizeOrderCommandHandler {
	var f commands.TicketingUoWFactory = FuncTicketingUoWFactory(func() commands.TicketingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReprioritizeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateEnsureDeliveryCommandHandler() commands.EnsureDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEnsureDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAutoAssignCouriersCommandHandler() commands.AutoAssignCouriersCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignCouriersCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateEscalateStaleOrdersCommandHandler() commands.EscalateStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEscalateStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenQueueQueryHandler() queries.GetKitchenQueueQueryHandler {
	return queries.NewGetKitchenQueueQueryHandler(c.gormDB, c.queuePlanner)
}

func (c *CompositionRoot) CreateGetKitchenQueueStatsQueryHandler() queries.GetKitchenQueueStatsQueryHandler {
	return queries.NewGetKitchenQueueStatsQueryHandler(c.gormDB, c.queuePlanner)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryByOrderQueryHandler() queries.GetDeliveryByOrderQueryHandler {
	return queries.NewGetDeliveryByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAutoAssignCouriersCommandHandler(),
		c.CreateEscalateStaleOrdersCommandHandler(),
		c.escalateAfter,
		c.autoAssignEnabled,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncTicketingUoWFactory func() commands.TicketingUoW

func (f FuncTicketingUoWFactory) Create() commands.TicketingUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
