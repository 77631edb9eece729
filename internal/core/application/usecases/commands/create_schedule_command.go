package commands

import (
	"errors"

	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/guard"
)

var (
	ErrCreateScheduleCommandIsNotConstructed = errors.New(
		"CreateScheduleCommand must be created via NewCreateScheduleCommand constructor",
	)
	ErrContainerNumberIsRequired = errors.New("containerNumber is required")
	ErrDateIsRequired            = errors.New("date is required")
)

// CreateScheduleCommand represents a request to register a pre-arrival
// appointment for a container. The appointment starts in the PENDENTE status
// and reserves nothing in the yard until it is confirmed.
type CreateScheduleCommand struct { //nolint:recvcheck //using for validation
	scheduleID      kernel.UUID
	containerNumber string
	containerType   string
	shippingLine    string
	location        string
	date            string
	timeOfDay       string

	guard guard.ConstructorGuard
}

// NewCreateScheduleCommand creates a command to register an appointment.
// The schedule ID, container number, and date are required; the remaining
// fields are descriptive and may be empty.
func NewCreateScheduleCommand(
	scheduleID kernel.UUID,
	containerNumber, containerType, shippingLine, location, date, timeOfDay string,
) (CreateScheduleCommand, error) {
	scheduleCommand := CreateScheduleCommand{
		containerType: containerType,
		shippingLine:  shippingLine,
		location:      location,
		timeOfDay:     timeOfDay,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scheduleCommand.setScheduleID(scheduleID),
		scheduleCommand.setContainerNumber(containerNumber),
		scheduleCommand.setDate(date),
	); err != nil {
		return CreateScheduleCommand{}, err
	}

	return scheduleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateScheduleCommandIsNotConstructed if validation fails.
func (c CreateScheduleCommand) Validate() error {
	return c.guard.Validate(ErrCreateScheduleCommandIsNotConstructed)
}

// ScheduleID returns the unique identifier for the appointment.
func (c CreateScheduleCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}

// ContainerNumber returns the external container code of the appointment.
func (c CreateScheduleCommand) ContainerNumber() string {
	return c.containerNumber
}

// ContainerType returns the declared container type.
func (c CreateScheduleCommand) ContainerType() string {
	return c.containerType
}

// ShippingLine returns the carrier of the appointment.
func (c CreateScheduleCommand) ShippingLine() string {
	return c.shippingLine
}

// Location returns the destination facility.
func (c CreateScheduleCommand) Location() string {
	return c.location
}

// Date returns the appointment date.
func (c CreateScheduleCommand) Date() string {
	return c.date
}

// TimeOfDay returns the appointment time.
func (c CreateScheduleCommand) TimeOfDay() string {
	return c.timeOfDay
}

func (c *CreateScheduleCommand) setScheduleID(scheduleID kernel.UUID) error {
	if err := scheduleID.Validate(); err != nil {
		return err
	}

	c.scheduleID = scheduleID
	return nil
}

func (c *CreateScheduleCommand) setContainerNumber(containerNumber string) error {
	if containerNumber == "" {
		return ErrContainerNumberIsRequired
	}

	c.containerNumber = containerNumber
	return nil
}

func (c *CreateScheduleCommand) setDate(date string) error {
	if date == "" {
		return ErrDateIsRequired
	}

	c.date = date
	return nil
}
