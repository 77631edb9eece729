package cmd

import (
	"yardgate/internal/adapters/out/postgres"
	"yardgate/internal/core/application/usecases/commands"
	"yardgate/internal/core/application/usecases/queries"
	"yardgate/internal/core/domain/services"
	"yardgate/internal/pkg/keylock"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Every command
// handler shares one keyed mutex so lock keys are honored process wide.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locks      *keylock.KeyedMutex
	admitter   services.GateAdmitter
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:      new(keylock.KeyedMutex),
		admitter:   services.NewGateAdmitter(),
	}
}

func (c *CompositionRoot) CreateCreateScheduleCommandHandler() commands.CreateScheduleCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateScheduleCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmScheduleCommandHandler() commands.ConfirmScheduleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmScheduleCommandHandler(f, c.locks)
}

func (c *CompositionRoot) CreateRegisterGateMovementCommandHandler() commands.RegisterGateMovementCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterGateMovementCommandHandler(f, c.admitter, c.locks)
}

func (c *CompositionRoot) CreateOpenInspectionCommandHandler() commands.OpenInspectionCommandHandler {
	return commands.NewOpenInspectionCommandHandler(c.containerUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateCompleteChecklistCommandHandler() commands.CompleteChecklistCommandHandler {
	return commands.NewCompleteChecklistCommandHandler(c.containerUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateSubmitEIRCommandHandler() commands.SubmitEIRCommandHandler {
	return commands.NewSubmitEIRCommandHandler(c.containerUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateRegisterBillingCommandHandler() commands.RegisterBillingCommandHandler {
	return commands.NewRegisterBillingCommandHandler(c.containerUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateGetDirectoryQueryHandler() queries.GetDirectoryQueryHandler {
	return queries.NewGetDirectoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetGateLogQueryHandler() queries.GetGateLogQueryHandler {
	return queries.NewGetGateLogQueryHandler(c.gormDB)
}

// CreateScheduleUoWFactory exposes the schedule unit of work for background jobs.
func (c *CompositionRoot) CreateScheduleUoWFactory() commands.ScheduleUoWFactory {
	return FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) containerUoWFactory() commands.ContainerUoWFactory {
	return FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
