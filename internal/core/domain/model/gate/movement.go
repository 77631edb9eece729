// Package gate implements the gate movement ledger entries: immutable
// records of physical ENTRADA/SAÍDA events at the facility gate. Each entry
// is a trigger input to the container lifecycle state machine but carries no
// lifecycle state of its own.
package gate

import (
	"fmt"
	"time"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/errs"
)

// Movement is the physical direction of a gate event.
type Movement int

const (
	// MovementUnknown represents an unset movement.
	MovementUnknown Movement = iota

	// Entrada is a physical entry through the gate.
	Entrada

	// Saida is a physical exit through the gate.
	Saida
)

// String returns the wire name of the movement, "ENTRADA" or "SAÍDA".
func (m Movement) String() string {
	switch m {
	case Entrada:
		return "ENTRADA"
	case Saida:
		return "SAÍDA"
	default:
		return "UNKNOWN"
	}
}

// MovementFromString parses a wire movement name. The unaccented spelling
// "SAIDA" is accepted as well, since gate kiosks cannot always type the
// accent.
func MovementFromString(s string) (Movement, error) {
	switch s {
	case "ENTRADA":
		return Entrada, nil
	case "SAÍDA", "SAIDA":
		return Saida, nil
	default:
		return MovementUnknown, errs.NewValueIsInvalidErrorWithCause("movement", fmt.Errorf("%q is not a valid movement", s))
	}
}

// Validate checks that the Movement is ENTRADA or SAÍDA.
func (m Movement) Validate() error {
	if m != Entrada && m != Saida {
		return errs.NewValueIsInvalidErrorWithCause("movement", fmt.Errorf("%d is not a valid movement", m))
	}
	return nil
}

// LogEntry is one immutable row of the gate movement ledger. Once
// constructed it never changes; corrections are recorded as new entries.
type LogEntry struct {
	id              kernel.UUID
	containerNumber string
	movement        Movement
	plate           string
	driverName      string
	inspectorName   string
	cargoStatus     container.CargoStatus
	at              time.Time

	isConstructed bool
}

// NewLogEntry creates a gate log entry with a server-assigned timestamp.
// The container number and driver name are required; the plate and inspector
// are descriptive. The cargo status must be asserted for every movement.
func NewLogEntry(
	id kernel.UUID,
	containerNumber string,
	movement Movement,
	plate, driverName, inspectorName string,
	cargoStatus container.CargoStatus,
) (*LogEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if containerNumber == "" {
		return nil, errs.NewValueIsRequiredError("containerNumber")
	}
	if driverName == "" {
		return nil, errs.NewValueIsRequiredError("driverName")
	}
	if err := movement.Validate(); err != nil {
		return nil, err
	}
	if err := cargoStatus.Validate(); err != nil {
		return nil, err
	}

	return &LogEntry{
		id:              id,
		containerNumber: containerNumber,
		movement:        movement,
		plate:           plate,
		driverName:      driverName,
		inspectorName:   inspectorName,
		cargoStatus:     cargoStatus,
		at:              time.Now().UTC(),
		isConstructed:   true,
	}, nil
}

// RestoreLogEntry reconstructs a ledger row from persistence, keeping the
// originally recorded timestamp.
func RestoreLogEntry(
	id kernel.UUID,
	containerNumber string,
	movement Movement,
	plate, driverName, inspectorName string,
	cargoStatus container.CargoStatus,
	at time.Time,
) (*LogEntry, error) {
	entry, err := NewLogEntry(id, containerNumber, movement, plate, driverName, inspectorName, cargoStatus)
	if err != nil {
		return nil, err
	}
	entry.at = at
	return entry, nil
}

// Validate ensures the entry was created through a constructor.
func (e *LogEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return errs.NewValueIsRequiredError("LogEntry must be created via NewLogEntry or RestoreLogEntry")
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *LogEntry) ID() kernel.UUID {
	return e.id
}

// ContainerNumber returns the external container code of the movement.
func (e *LogEntry) ContainerNumber() string {
	return e.containerNumber
}

// Movement returns the physical direction of the event.
func (e *LogEntry) Movement() Movement {
	return e.movement
}

// Plate returns the truck plate recorded at the gate.
func (e *LogEntry) Plate() string {
	return e.plate
}

// DriverName returns the driver identity recorded at the gate.
func (e *LogEntry) DriverName() string {
	return e.driverName
}

// InspectorName returns the inspector who asserted the cargo status.
func (e *LogEntry) InspectorName() string {
	return e.inspectorName
}

// CargoStatus returns the asserted cargo status (VAZIO or CHEIO).
func (e *LogEntry) CargoStatus() container.CargoStatus {
	return e.cargoStatus
}

// At returns the server-assigned timestamp of the movement.
func (e *LogEntry) At() time.Time {
	return e.at
}
