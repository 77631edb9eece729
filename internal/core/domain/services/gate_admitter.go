package services

import (
	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/gate"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/yard"
)

// GateAdmitter is a domain service that coordinates the admission of a
// container through the gate: it allocates the lowest free yard slot, seeds
// a container record in the Created state, and registers the gate entry.
//
// Key responsibilities:
//   - Validating the gate log entry before admission
//   - Allocating a yard slot atomically with record creation
//   - Applying the GateEntryRegistered transition
//
// Business rules:
//   - Admission happens only for ENTRADA movements
//   - The cargo status asserted at the gate is fixed for the whole stay
//   - Slot allocation and record seeding succeed or fail as one operation
type GateAdmitter struct{}

// NewGateAdmitter creates a new GateAdmitter instance.
func NewGateAdmitter() GateAdmitter {
	return GateAdmitter{}
}

// Admit seeds a container record for an entry movement and binds it to the
// lowest free slot of the arena. The actor is recorded on the record's first
// history entry.
//
// Returns the new record, or an error when the entry is invalid, the yard is
// full (CapacityExceededError), or the movement is not an ENTRADA.
//
// On any failure after allocation the slot is released again, so a rejected
// admission leaves the arena unchanged.
func (g GateAdmitter) Admit(entry *gate.LogEntry, arena *yard.Arena, actor string) (*container.Container, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := arena.Validate(); err != nil {
		return nil, err
	}
	if err := entry.Movement().Validate(); err != nil {
		return nil, err
	}

	recordID := kernel.NewUUID()
	internalID, err := arena.Allocate(recordID)
	if err != nil {
		return nil, err
	}

	record, err := container.NewContainer(recordID, internalID, entry.ContainerNumber())
	if err != nil {
		_ = arena.Release(internalID)
		return nil, err
	}

	if err = record.RegisterGateEntry(actor, entry.CargoStatus()); err != nil {
		_ = arena.Release(internalID)
		return nil, err
	}

	return record, nil
}
