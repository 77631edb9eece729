package commands

import (
	"errors"

	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/guard"
)

var (
	ErrOpenInspectionCommandIsNotConstructed = errors.New(
		"OpenInspectionCommand must be created via NewOpenInspectionCommand constructor",
	)
	ErrInspectorNameIsRequired = errors.New("inspectorName is required")
)

// OpenInspectionCommand represents a request to divert a freshly arrived
// container into a detailed inspection before its checklist is completed.
type OpenInspectionCommand struct { //nolint:recvcheck //using for validation
	internalID    int
	inspectorName string

	guard guard.ConstructorGuard
}

// NewOpenInspectionCommand creates a command to open an inspection on the
// record occupying the given yard slot.
func NewOpenInspectionCommand(internalID int, inspectorName string) (OpenInspectionCommand, error) {
	inspectionCommand := OpenInspectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inspectionCommand.setInternalID(internalID),
		inspectionCommand.setInspectorName(inspectorName),
	); err != nil {
		return OpenInspectionCommand{}, err
	}

	return inspectionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenInspectionCommand) Validate() error {
	return c.guard.Validate(ErrOpenInspectionCommandIsNotConstructed)
}

// InternalID returns the yard slot index addressing the record.
func (c OpenInspectionCommand) InternalID() int {
	return c.internalID
}

// InspectorName returns the inspector opening the inspection.
func (c OpenInspectionCommand) InspectorName() string {
	return c.inspectorName
}

func (c *OpenInspectionCommand) setInternalID(internalID int) error {
	if internalID < 0 {
		return errs.NewValueIsInvalidError("internalID")
	}

	c.internalID = internalID
	return nil
}

func (c *OpenInspectionCommand) setInspectorName(inspectorName string) error {
	if inspectorName == "" {
		return ErrInspectorNameIsRequired
	}

	c.inspectorName = inspectorName
	return nil
}
