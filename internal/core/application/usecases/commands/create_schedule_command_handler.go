package commands

import (
	"context"

	"yardgate/internal/core/domain/model/schedule"
)

// CreateScheduleCommandHandler handles the business logic for appointment
// registration. New appointments are persisted in the PENDENTE status.
type CreateScheduleCommandHandler struct {
	uowFactory ScheduleUoWFactory
}

// NewCreateScheduleCommandHandler creates a handler for appointment registration.
// Requires a ScheduleUoWFactory for transactional persistence.
func NewCreateScheduleCommandHandler(uowFactory ScheduleUoWFactory) CreateScheduleCommandHandler {
	return CreateScheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the appointment registration command.
// Uses a transaction to ensure the schedule is properly persisted or rolled
// back on error.
func (h *CreateScheduleCommandHandler) Handle(ctx context.Context, cmd CreateScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduleRepository()
	appointment, err := schedule.NewSchedule(
		cmd.ScheduleID(),
		cmd.ContainerNumber(),
		cmd.ContainerType(),
		cmd.ShippingLine(),
		cmd.Location(),
		cmd.Date(),
		cmd.TimeOfDay(),
	)
	if err != nil {
		return err
	}

	if err = scheduleRepo.Add(ctx, appointment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
