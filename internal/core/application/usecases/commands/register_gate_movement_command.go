package commands

import (
	"errors"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/gate"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/guard"
)

var (
	ErrRegisterGateMovementCommandIsNotConstructed = errors.New(
		"RegisterGateMovementCommand must be created via NewRegisterGateMovementCommand constructor",
	)
	ErrDriverNameIsRequired = errors.New("driverName is required")
)

// RegisterGateMovementCommand represents a physical ENTRADA or SAÍDA event
// reported by the gate kiosk. Every movement is appended to the gate ledger;
// an ENTRADA additionally admits the container into the yard and a SAÍDA
// closes its record and frees its slot.
type RegisterGateMovementCommand struct { //nolint:recvcheck //using for validation
	entryID         kernel.UUID
	containerNumber string
	movement        gate.Movement
	plate           string
	driverName      string
	inspectorName   string
	cargoStatus     container.CargoStatus

	guard guard.ConstructorGuard
}

// NewRegisterGateMovementCommand creates a command for one gate movement.
// The container number, driver name, movement, and cargo status are
// required; the plate and inspector name are descriptive.
func NewRegisterGateMovementCommand(
	entryID kernel.UUID,
	containerNumber string,
	movement gate.Movement,
	plate, driverName, inspectorName string,
	cargoStatus container.CargoStatus,
) (RegisterGateMovementCommand, error) {
	movementCommand := RegisterGateMovementCommand{
		plate:         plate,
		inspectorName: inspectorName,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		movementCommand.setEntryID(entryID),
		movementCommand.setContainerNumber(containerNumber),
		movementCommand.setMovement(movement),
		movementCommand.setDriverName(driverName),
		movementCommand.setCargoStatus(cargoStatus),
	); err != nil {
		return RegisterGateMovementCommand{}, err
	}

	return movementCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterGateMovementCommandIsNotConstructed if validation fails.
func (c RegisterGateMovementCommand) Validate() error {
	return c.guard.Validate(ErrRegisterGateMovementCommandIsNotConstructed)
}

// EntryID returns the identifier assigned to the ledger entry.
func (c RegisterGateMovementCommand) EntryID() kernel.UUID {
	return c.entryID
}

// ContainerNumber returns the external container code of the movement.
func (c RegisterGateMovementCommand) ContainerNumber() string {
	return c.containerNumber
}

// Movement returns the physical direction of the event.
func (c RegisterGateMovementCommand) Movement() gate.Movement {
	return c.movement
}

// Plate returns the truck plate recorded at the gate.
func (c RegisterGateMovementCommand) Plate() string {
	return c.plate
}

// DriverName returns the driver identity recorded at the gate.
func (c RegisterGateMovementCommand) DriverName() string {
	return c.driverName
}

// InspectorName returns the inspector who asserted the cargo status.
func (c RegisterGateMovementCommand) InspectorName() string {
	return c.inspectorName
}

// CargoStatus returns the asserted cargo status (VAZIO or CHEIO).
func (c RegisterGateMovementCommand) CargoStatus() container.CargoStatus {
	return c.cargoStatus
}

func (c *RegisterGateMovementCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *RegisterGateMovementCommand) setContainerNumber(containerNumber string) error {
	if containerNumber == "" {
		return ErrContainerNumberIsRequired
	}

	c.containerNumber = containerNumber
	return nil
}

func (c *RegisterGateMovementCommand) setMovement(movement gate.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	c.movement = movement
	return nil
}

func (c *RegisterGateMovementCommand) setDriverName(driverName string) error {
	if driverName == "" {
		return ErrDriverNameIsRequired
	}

	c.driverName = driverName
	return nil
}

func (c *RegisterGateMovementCommand) setCargoStatus(cargoStatus container.CargoStatus) error {
	if err := cargoStatus.Validate(); err != nil {
		return err
	}

	c.cargoStatus = cargoStatus
	return nil
}
