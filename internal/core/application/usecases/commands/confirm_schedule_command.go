package commands

import (
	"errors"

	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/guard"
)

var ErrConfirmScheduleCommandIsNotConstructed = errors.New(
	"ConfirmScheduleCommand must be created via NewConfirmScheduleCommand constructor",
)

// ConfirmScheduleCommand represents a request to confirm a pre-arrival
// appointment. The first confirmation seeds a container record into the
// lowest free yard slot; repeating the confirmation is a no-op.
type ConfirmScheduleCommand struct { //nolint:recvcheck //using for validation
	scheduleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmScheduleCommand creates a command to confirm an appointment.
func NewConfirmScheduleCommand(scheduleID kernel.UUID) (ConfirmScheduleCommand, error) {
	confirmCommand := ConfirmScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setScheduleID(scheduleID); err != nil {
		return ConfirmScheduleCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmScheduleCommandIsNotConstructed if validation fails.
func (c ConfirmScheduleCommand) Validate() error {
	return c.guard.Validate(ErrConfirmScheduleCommandIsNotConstructed)
}

// ScheduleID returns the identifier of the appointment to confirm.
func (c ConfirmScheduleCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}

func (c *ConfirmScheduleCommand) setScheduleID(scheduleID kernel.UUID) error {
	if err := scheduleID.Validate(); err != nil {
		return err
	}

	c.scheduleID = scheduleID
	return nil
}
