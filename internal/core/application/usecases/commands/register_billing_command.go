package commands

import (
	"errors"

	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/guard"
)

var (
	ErrRegisterBillingCommandIsNotConstructed = errors.New(
		"RegisterBillingCommand must be created via NewRegisterBillingCommand constructor",
	)
	ErrClerkNameIsRequired = errors.New("clerkName is required")
)

// RegisterBillingCommand represents the billing settlement for a stored
// container. Billing happens exactly once per stay; resubmitting for an
// already billed record is a harmless no-op.
type RegisterBillingCommand struct { //nolint:recvcheck //using for validation
	internalID int
	clerkName  string

	guard guard.ConstructorGuard
}

// NewRegisterBillingCommand creates a command to bill the record occupying
// the given yard slot.
func NewRegisterBillingCommand(internalID int, clerkName string) (RegisterBillingCommand, error) {
	billingCommand := RegisterBillingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		billingCommand.setInternalID(internalID),
		billingCommand.setClerkName(clerkName),
	); err != nil {
		return RegisterBillingCommand{}, err
	}

	return billingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterBillingCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBillingCommandIsNotConstructed)
}

// InternalID returns the yard slot index addressing the record.
func (c RegisterBillingCommand) InternalID() int {
	return c.internalID
}

// ClerkName returns the billing clerk performing the settlement.
func (c RegisterBillingCommand) ClerkName() string {
	return c.clerkName
}

func (c *RegisterBillingCommand) setInternalID(internalID int) error {
	if internalID < 0 {
		return errs.NewValueIsInvalidError("internalID")
	}

	c.internalID = internalID
	return nil
}

func (c *RegisterBillingCommand) setClerkName(clerkName string) error {
	if clerkName == "" {
		return ErrClerkNameIsRequired
	}

	c.clerkName = clerkName
	return nil
}
