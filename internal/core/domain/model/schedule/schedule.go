// Package schedule implements the pre-arrival appointment aggregate.
// A schedule is created PENDENTE by an operator and transitions once to
// CONFIRMADO; confirming an already confirmed schedule is a no-op by design,
// since a UI operator may double-submit. Schedules are never deleted, only
// superseded by the container record they seed.
package schedule

import (
	"errors"
	"fmt"

	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/errs"
)

var (
	// ErrScheduleIsNotConstructed is returned when a Schedule instance was not
	// created through NewSchedule or RestoreSchedule.
	ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule or RestoreSchedule")
)

// Status is the confirmation state of a schedule.
type Status int

const (
	// StatusUnknown represents an unset status.
	StatusUnknown Status = iota

	// Pendente is the initial status of a freshly created schedule.
	Pendente

	// Confirmado indicates the appointment was confirmed and a container
	// record was seeded into the yard.
	Confirmado
)

// String returns the wire name of the status, "PENDENTE" or "CONFIRMADO".
func (s Status) String() string {
	switch s {
	case Pendente:
		return "PENDENTE"
	case Confirmado:
		return "CONFIRMADO"
	default:
		return "UNKNOWN"
	}
}

// Validate checks that the Status is PENDENTE or CONFIRMADO.
func (s Status) Validate() error {
	if s != Pendente && s != Confirmado {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Schedule is a pre-arrival appointment for one container.
type Schedule struct {
	id              kernel.UUID
	containerNumber string
	containerType   string
	shippingLine    string
	location        string
	date            string
	timeOfDay       string
	status          Status

	isConstructed bool
}

// NewSchedule creates an appointment in the PENDENTE status.
// The container number and date are required; the remaining fields are
// descriptive.
func NewSchedule(id kernel.UUID, containerNumber, containerType, shippingLine, location, date, timeOfDay string) (*Schedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if containerNumber == "" {
		return nil, errs.NewValueIsRequiredError("containerNumber")
	}
	if date == "" {
		return nil, errs.NewValueIsRequiredError("date")
	}

	return &Schedule{
		id:              id,
		containerNumber: containerNumber,
		containerType:   containerType,
		shippingLine:    shippingLine,
		location:        location,
		date:            date,
		timeOfDay:       timeOfDay,
		status:          Pendente,
		isConstructed:   true,
	}, nil
}

// RestoreSchedule reconstructs a schedule from persistence.
func RestoreSchedule(id kernel.UUID, containerNumber, containerType, shippingLine, location, date, timeOfDay string, status Status) (*Schedule, error) {
	restored, err := NewSchedule(id, containerNumber, containerType, shippingLine, location, date, timeOfDay)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	restored.status = status
	return restored, nil
}

// Validate ensures the Schedule instance was properly constructed.
func (s *Schedule) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduleIsNotConstructed
	}
	return nil
}

// ID returns the schedule's unique identifier.
func (s *Schedule) ID() kernel.UUID {
	return s.id
}

// ContainerNumber returns the external container code of the appointment.
func (s *Schedule) ContainerNumber() string {
	return s.containerNumber
}

// ContainerType returns the declared container type (e.g. "40HC").
func (s *Schedule) ContainerType() string {
	return s.containerType
}

// ShippingLine returns the carrier of the appointment.
func (s *Schedule) ShippingLine() string {
	return s.shippingLine
}

// Location returns the destination facility (terminal or depot).
func (s *Schedule) Location() string {
	return s.location
}

// Date returns the appointment date.
func (s *Schedule) Date() string {
	return s.date
}

// TimeOfDay returns the appointment time.
func (s *Schedule) TimeOfDay() string {
	return s.timeOfDay
}

// Status returns the confirmation status.
func (s *Schedule) Status() Status {
	return s.status
}

// IsConfirmed reports whether the appointment has been confirmed.
func (s *Schedule) IsConfirmed() bool {
	return s.status == Confirmado
}

// Confirm transitions the schedule PENDENTE -> CONFIRMADO. Confirming an
// already confirmed schedule is a no-op, not an error. It returns true when
// this call performed the transition, so the caller knows whether to seed
// the container record.
func (s *Schedule) Confirm() bool {
	if s.status == Confirmado {
		return false
	}
	s.status = Confirmado
	return true
}
