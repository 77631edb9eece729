package container

import (
	"fmt"

	"yardgate/internal/pkg/errs"
)

// State represents the lifecycle state of a container record.
// It implements a state machine with guarded transitions so containers
// follow the operational workflow from gate entry to closure.
//
// State transitions:
//
//	Created ──> GateIn ──┬──────────────> Ready ──> InYard ──┬──> EmptyAlert ──┐
//	                     │                  ^                │                 ├──> Billed ──> Closed
//	                     └──> Inspection ───┘                └──> Full ────────┘
//
// The InYard fork is resolved by the cargo status asserted at the gate:
// an empty container (VAZIO) raises an empty alert, a loaded one (CHEIO)
// settles as full.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	StateUnknown State = iota

	// Created is the initial state of a container record, assigned when a
	// confirmed schedule or a first gate entry seeds the record.
	Created

	// GateIn indicates the container physically entered through the gate.
	GateIn

	// Inspection indicates an operator opened a physical inspection
	// before the checklist could be validated.
	Inspection

	// Ready indicates the entry checklist was completed and the container
	// awaits its interchange receipt.
	Ready

	// InYard indicates the interchange receipt was finalized and the
	// container occupies its yard slot pending cargo-status resolution.
	InYard

	// EmptyAlert indicates yard placement resolved the container as empty.
	EmptyAlert

	// Full indicates yard placement resolved the container as loaded.
	Full

	// Billed indicates the stay was invoiced. Billing happens exactly once.
	Billed

	// Closed is the terminal state, reached when the container exits
	// through the gate. The record is retained for audit only.
	Closed
)

// Event is the closed set of lifecycle triggers accepted by the state
// machine. Anything outside this enumeration cannot reach the transition
// function, so the transition table is checked at compile time rather than
// by string comparison.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// GateEntryRegistered is fired when an ENTRADA gate movement is recorded.
	GateEntryRegistered

	// InspectionOpened is fired when an operator routes the container into
	// physical inspection before validating the checklist.
	InspectionOpened

	// ChecklistCompleted is fired when the entry checklist is validated.
	ChecklistCompleted

	// EIRCompleted is fired when the interchange receipt is finalized.
	EIRCompleted

	// YardPlacementResolved is fired immediately after EIRCompleted to
	// settle the InYard fork according to the container's cargo status.
	YardPlacementResolved

	// ContainerBilled is fired when billing for the stay is registered.
	ContainerBilled

	// GateExitRegistered is fired when a SAÍDA gate movement is recorded.
	GateExitRegistered
)

// CargoStatus describes whether a container is empty or loaded.
// It is asserted by the gate inspector at entry and never changes while the
// container occupies the yard.
type CargoStatus int

const (
	// CargoUnknown represents an unset cargo status.
	CargoUnknown CargoStatus = iota

	// Vazio marks an empty container (VAZIO).
	Vazio

	// Cheio marks a loaded container (CHEIO).
	Cheio
)

func stateStrings() map[State]string {
	return map[State]string{
		StateUnknown: "UNKNOWN",
		Created:      "CREATED",
		GateIn:       "GATE_IN",
		Inspection:   "INSPECTION",
		Ready:        "READY",
		InYard:       "IN_YARD",
		EmptyAlert:   "EMPTY_ALERT",
		Full:         "FULL",
		Billed:       "BILLED",
		Closed:       "CLOSED",
	}
}

// String returns the wire name of the state, e.g. "GATE_IN".
// Unknown values render as "UNKNOWN".
func (s State) String() string {
	if str, ok := stateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the State value is one of the enumerated states.
func (s State) Validate() error {
	if s <= StateUnknown || s > Closed {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (s State) IsTerminal() bool {
	return s == Closed
}

func eventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:          "UNKNOWN",
		GateEntryRegistered:   "GATE_ENTRY_REGISTERED",
		InspectionOpened:      "INSPECTION_OPENED",
		ChecklistCompleted:    "CHECKLIST_COMPLETED",
		EIRCompleted:          "EIR_COMPLETED",
		YardPlacementResolved: "YARD_PLACEMENT_RESOLVED",
		ContainerBilled:       "CONTAINER_BILLED",
		GateExitRegistered:    "GATE_EXIT_REGISTERED",
	}
}

// String returns the wire name of the event, e.g. "CHECKLIST_COMPLETED".
func (e Event) String() string {
	if str, ok := eventStrings()[e]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Event value is one of the enumerated events.
func (e Event) Validate() error {
	if e <= EventUnknown || e > GateExitRegistered {
		return errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("%d is not a valid event", e))
	}
	return nil
}

func cargoStrings() map[CargoStatus]string {
	return map[CargoStatus]string{
		CargoUnknown: "UNKNOWN",
		Vazio:        "VAZIO",
		Cheio:        "CHEIO",
	}
}

// String returns the wire name of the cargo status, "VAZIO" or "CHEIO".
func (c CargoStatus) String() string {
	if str, ok := cargoStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// CargoStatusFromString parses a wire cargo status name.
func CargoStatusFromString(s string) (CargoStatus, error) {
	switch s {
	case "VAZIO":
		return Vazio, nil
	case "CHEIO":
		return Cheio, nil
	default:
		return CargoUnknown, errs.NewValueIsInvalidErrorWithCause("cargoStatus", fmt.Errorf("%q is not a valid cargo status", s))
	}
}

// Validate checks that the CargoStatus is VAZIO or CHEIO.
func (c CargoStatus) Validate() error {
	if c != Vazio && c != Cheio {
		return errs.NewValueIsInvalidErrorWithCause("cargoStatus", fmt.Errorf("%d is not a valid cargo status", c))
	}
	return nil
}

// Transition is the pure transition function of the container lifecycle
// state machine: given the current state, a lifecycle event, and the cargo
// status asserted at the gate, it returns the next state.
//
// Every combination not covered below is rejected with an
// InvalidTransitionError carrying the event and current state; the engine
// never silently ignores an out-of-order event.
func Transition(current State, event Event, cargo CargoStatus) (State, error) {
	switch event {
	case GateEntryRegistered:
		if current == Created {
			return GateIn, nil
		}
	case InspectionOpened:
		if current == GateIn {
			return Inspection, nil
		}
	case ChecklistCompleted:
		if current == GateIn || current == Inspection {
			return Ready, nil
		}
	case EIRCompleted:
		if current == Ready {
			return InYard, nil
		}
	case YardPlacementResolved:
		if current == InYard {
			if err := cargo.Validate(); err != nil {
				return StateUnknown, err
			}
			if cargo == Vazio {
				return EmptyAlert, nil
			}
			return Full, nil
		}
	case ContainerBilled:
		if current == EmptyAlert || current == Full {
			return Billed, nil
		}
	case GateExitRegistered:
		if current == Billed {
			return Closed, nil
		}
	case EventUnknown:
	}

	return StateUnknown, errs.NewInvalidTransitionError(event.String(), current.String())
}
