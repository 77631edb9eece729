package container

import (
	"errors"
	"time"

	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/errs"
)

var (
	// ErrContainerIsNotConstructed is returned when a Container instance was not
	// created through NewContainer or RestoreContainer. This ensures all records
	// are properly validated.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer or RestoreContainer")
)

// Container is the aggregate root of a container record: identity,
// classification, yard binding, and the single authoritative lifecycle state.
//
// Container maintains these invariants:
//   - state is always the replay of history through the transition function
//   - every successful transition appends exactly one history entry,
//     atomically with the state change
//   - billed is set exactly once, by the ContainerBilled transition
//   - a rejected event leaves the record completely unchanged
//   - descriptive metadata is mutable only while the record is not Closed
//
// All mutation goes through the event methods below; there is no setter for
// the state field.
type Container struct {
	// id is the unique identifier of the record
	id kernel.UUID

	// internalID is the yard slot index assigned at creation; it stays
	// stable for the whole occupancy of the slot
	internalID int

	// containerNumber is the external ISO 6346-style code
	containerNumber string

	// client and shippingLine are descriptive metadata
	client       string
	shippingLine string

	// booking is the carrier booking / bill of lading cross-reference
	booking string

	// terminal is the facility the record belongs to
	terminal string

	// cargoStatus is asserted by the gate inspector at entry and is fixed
	// for the rest of the stay; it resolves the InYard fork
	cargoStatus CargoStatus

	// state is the cached projection of history
	state State

	// billed flips to true on the first ContainerBilled transition
	billed bool

	// history is the append-only event ledger scoped to this record
	history []HistoryEntry

	// isConstructed ensures the record was created via a constructor
	isConstructed bool
}

// NewContainer creates a container record in the Created state, bound to the
// given yard slot. The cargo status is not known yet: it is asserted by the
// gate inspector when the container physically arrives.
func NewContainer(id kernel.UUID, internalID int, containerNumber string) (*Container, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if containerNumber == "" {
		return nil, errs.NewValueIsRequiredError("containerNumber")
	}
	if internalID < 0 {
		return nil, errs.NewValueIsInvalidError("internalId")
	}

	return &Container{
		id:              id,
		internalID:      internalID,
		containerNumber: containerNumber,
		cargoStatus:     CargoUnknown,
		state:           Created,
		isConstructed:   true,
	}, nil
}

// RestoreContainer reconstructs a record from persistence. It verifies the
// replay invariant: folding the transition function over the supplied history
// must reproduce the supplied state, and billed must match the presence of a
// ContainerBilled entry in the ledger.
func RestoreContainer(
	id kernel.UUID,
	internalID int,
	containerNumber string,
	client, shippingLine, booking, terminal string,
	cargoStatus CargoStatus,
	state State,
	billed bool,
	history []HistoryEntry,
) (*Container, error) {
	restored, err := NewContainer(id, internalID, containerNumber)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}
	restored.cargoStatus = cargoStatus

	replayed, err := Replay(history, cargoStatus)
	if err != nil {
		return nil, err
	}
	if replayed != state {
		return nil, errs.NewValueIsInvalidErrorWithCause("state",
			errs.NewInvalidTransitionError("REPLAY", replayed.String()))
	}
	if billed != containsEvent(history, ContainerBilled) {
		return nil, errs.NewValueIsInvalidError("billed")
	}

	restored.client = client
	restored.shippingLine = shippingLine
	restored.booking = booking
	restored.terminal = terminal
	restored.state = state
	restored.billed = billed
	restored.history = copyHistory(history)
	return restored, nil
}

// Validate ensures the Container instance was properly constructed.
func (c *Container) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContainerIsNotConstructed
	}
	return nil
}

// IsEqual compares two records by their unique identifiers.
func (c *Container) IsEqual(other *Container) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (c *Container) ID() kernel.UUID {
	return c.id
}

// InternalID returns the yard slot index bound to this record.
func (c *Container) InternalID() int {
	return c.internalID
}

// ContainerNumber returns the external container code.
func (c *Container) ContainerNumber() string {
	return c.containerNumber
}

// Client returns the client metadata.
func (c *Container) Client() string {
	return c.client
}

// ShippingLine returns the shipping line metadata.
func (c *Container) ShippingLine() string {
	return c.shippingLine
}

// Booking returns the carrier booking / BL cross-reference.
func (c *Container) Booking() string {
	return c.booking
}

// Terminal returns the facility the record belongs to.
func (c *Container) Terminal() string {
	return c.terminal
}

// CargoStatus returns the cargo status asserted at gate entry.
func (c *Container) CargoStatus() CargoStatus {
	return c.cargoStatus
}

// State returns the current lifecycle state.
func (c *Container) State() State {
	return c.state
}

// Billed reports whether the stay has been invoiced.
func (c *Container) Billed() bool {
	return c.billed
}

// History returns a copy of the event ledger. The ledger itself is
// append-only and cannot be modified through the returned slice.
func (c *Container) History() []HistoryEntry {
	return copyHistory(c.history)
}

// UpdateDetails replaces the descriptive metadata of the record.
// Metadata is frozen once the record is Closed.
func (c *Container) UpdateDetails(client, shippingLine, booking, terminal string) error {
	if c.state == Closed {
		return errs.NewInvalidTransitionError("UPDATE_DETAILS", c.state.String())
	}

	c.client = client
	c.shippingLine = shippingLine
	c.booking = booking
	c.terminal = terminal
	return nil
}

// RegisterGateEntry applies GateEntryRegistered: Created -> GateIn, and
// fixes the cargo status asserted by the gate inspector for the rest of the
// stay. The cargo status later resolves the InYard fork at yard placement.
func (c *Container) RegisterGateEntry(actor string, cargoStatus CargoStatus) error {
	if err := cargoStatus.Validate(); err != nil {
		return err
	}
	if err := c.apply(GateEntryRegistered, actor, nil); err != nil {
		return err
	}
	c.cargoStatus = cargoStatus
	return nil
}

// OpenInspection applies InspectionOpened: GateIn -> Inspection.
func (c *Container) OpenInspection(actor string) error {
	return c.apply(InspectionOpened, actor, nil)
}

// CompleteChecklist applies ChecklistCompleted: GateIn or Inspection -> Ready.
func (c *Container) CompleteChecklist(actor string) error {
	return c.apply(ChecklistCompleted, actor, nil)
}

// CompleteEIR finalizes the interchange receipt and places the container in
// the yard. Both the EIRCompleted and the YardPlacementResolved transitions
// are applied as one operation: after a successful call the record is in
// EmptyAlert or Full, depending on the cargo status asserted at the gate.
//
// The condition and seal number are stored as immutable metadata on the
// EIRCompleted history entry, preserving their point-in-time values.
// Submission with an empty condition or seal is rejected with
// IncompleteEIRError before any transition is attempted.
func (c *Container) CompleteEIR(condition, sealNumber, actor string) error {
	if condition == "" {
		return errs.NewIncompleteEIRError("condition")
	}
	if sealNumber == "" {
		return errs.NewIncompleteEIRError("sealNumber")
	}

	// Guard both transitions before mutating, so a record in the wrong
	// state is left untouched.
	afterEIR, err := Transition(c.state, EIRCompleted, c.cargoStatus)
	if err != nil {
		return err
	}
	if _, err = Transition(afterEIR, YardPlacementResolved, c.cargoStatus); err != nil {
		return err
	}

	if err = c.apply(EIRCompleted, actor, map[string]string{
		MetadataCondition:  condition,
		MetadataSealNumber: sealNumber,
	}); err != nil {
		return err
	}
	return c.apply(YardPlacementResolved, actor, nil)
}

// RegisterBilling applies ContainerBilled: EmptyAlert or Full -> Billed, and
// sets the billed flag exactly once. Re-applying billing to a record already
// in Billed is an idempotent no-op: no transition, no history entry, and the
// flag is untouched. Any state past Billed still fails the guard.
func (c *Container) RegisterBilling(actor string) error {
	if c.state == Billed && c.billed {
		return nil
	}

	if err := c.apply(ContainerBilled, actor, nil); err != nil {
		return err
	}
	c.billed = true
	return nil
}

// RegisterGateExit applies GateExitRegistered: Billed -> Closed.
// Closed is terminal; the yard slot is released by the caller afterwards
// while the record itself is retained for audit.
func (c *Container) RegisterGateExit(actor string) error {
	return c.apply(GateExitRegistered, actor, nil)
}

// apply runs the transition function and, only on success, appends the
// history entry and updates the cached state as one unit.
func (c *Container) apply(event Event, actor string, metadata map[string]string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	next, err := Transition(c.state, event, c.cargoStatus)
	if err != nil {
		return err
	}

	c.history = append(c.history, HistoryEntry{
		At:       time.Now().UTC(),
		Event:    event,
		Actor:    actor,
		Metadata: metadata,
	})
	c.state = next
	return nil
}
