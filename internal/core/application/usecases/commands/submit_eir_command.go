package commands

import (
	"errors"

	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/guard"
)

var ErrSubmitEIRCommandIsNotConstructed = errors.New(
	"SubmitEIRCommand must be created via NewSubmitEIRCommand constructor",
)

// SubmitEIRCommand represents the equipment interchange report for a Ready
// record. A complete report carries the container condition and the seal
// number; submitting it places the record into the yard, resolving to
// EmptyAlert or Full depending on the cargo status asserted at the gate.
type SubmitEIRCommand struct { //nolint:recvcheck //using for validation
	internalID    int
	condition     string
	sealNumber    string
	inspectorName string

	guard guard.ConstructorGuard
}

// NewSubmitEIRCommand creates a command to submit an interchange report.
// An incomplete report (missing condition or seal number) is rejected here,
// before the record is ever touched.
func NewSubmitEIRCommand(internalID int, condition, sealNumber, inspectorName string) (SubmitEIRCommand, error) {
	eirCommand := SubmitEIRCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		eirCommand.setInternalID(internalID),
		eirCommand.setCondition(condition),
		eirCommand.setSealNumber(sealNumber),
		eirCommand.setInspectorName(inspectorName),
	); err != nil {
		return SubmitEIRCommand{}, err
	}

	return eirCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitEIRCommand) Validate() error {
	return c.guard.Validate(ErrSubmitEIRCommandIsNotConstructed)
}

// InternalID returns the yard slot index addressing the record.
func (c SubmitEIRCommand) InternalID() int {
	return c.internalID
}

// Condition returns the reported container condition.
func (c SubmitEIRCommand) Condition() string {
	return c.condition
}

// SealNumber returns the reported seal number.
func (c SubmitEIRCommand) SealNumber() string {
	return c.sealNumber
}

// InspectorName returns the inspector submitting the report.
func (c SubmitEIRCommand) InspectorName() string {
	return c.inspectorName
}

func (c *SubmitEIRCommand) setInternalID(internalID int) error {
	if internalID < 0 {
		return errs.NewValueIsInvalidError("internalID")
	}

	c.internalID = internalID
	return nil
}

func (c *SubmitEIRCommand) setCondition(condition string) error {
	if condition == "" {
		return errs.NewIncompleteEIRError("condition")
	}

	c.condition = condition
	return nil
}

func (c *SubmitEIRCommand) setSealNumber(sealNumber string) error {
	if sealNumber == "" {
		return errs.NewIncompleteEIRError("sealNumber")
	}

	c.sealNumber = sealNumber
	return nil
}

func (c *SubmitEIRCommand) setInspectorName(inspectorName string) error {
	if inspectorName == "" {
		return ErrInspectorNameIsRequired
	}

	c.inspectorName = inspectorName
	return nil
}
