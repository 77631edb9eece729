package commands

import (
	"errors"

	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/guard"
)

var ErrCompleteChecklistCommandIsNotConstructed = errors.New(
	"CompleteChecklistCommand must be created via NewCompleteChecklistCommand constructor",
)

// CompleteChecklistCommand represents the completion of the arrival
// checklist for the record occupying a yard slot, marking it Ready for its
// interchange report.
type CompleteChecklistCommand struct { //nolint:recvcheck //using for validation
	internalID    int
	inspectorName string

	guard guard.ConstructorGuard
}

// NewCompleteChecklistCommand creates a command to complete a checklist.
func NewCompleteChecklistCommand(internalID int, inspectorName string) (CompleteChecklistCommand, error) {
	checklistCommand := CompleteChecklistCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checklistCommand.setInternalID(internalID),
		checklistCommand.setInspectorName(inspectorName),
	); err != nil {
		return CompleteChecklistCommand{}, err
	}

	return checklistCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteChecklistCommand) Validate() error {
	return c.guard.Validate(ErrCompleteChecklistCommandIsNotConstructed)
}

// InternalID returns the yard slot index addressing the record.
func (c CompleteChecklistCommand) InternalID() int {
	return c.internalID
}

// InspectorName returns the inspector completing the checklist.
func (c CompleteChecklistCommand) InspectorName() string {
	return c.inspectorName
}

func (c *CompleteChecklistCommand) setInternalID(internalID int) error {
	if internalID < 0 {
		return errs.NewValueIsInvalidError("internalID")
	}

	c.internalID = internalID
	return nil
}

func (c *CompleteChecklistCommand) setInspectorName(inspectorName string) error {
	if inspectorName == "" {
		return ErrInspectorNameIsRequired
	}

	c.inspectorName = inspectorName
	return nil
}
