package container

import (
	"time"
)

// Metadata keys attached to history entries by specific events.
// The EIRCompleted entry carries the external condition and seal number
// recorded at receipt finalization, frozen at that point in time.
const (
	MetadataCondition  = "condition"
	MetadataSealNumber = "sealNumber"
)

// HistoryEntry is one immutable row of a container's event ledger:
// which event fired, who triggered it, and when the engine admitted it.
// Entries are strictly ordered by admission order, not by wall clock alone.
type HistoryEntry struct {
	// At is the server-assigned timestamp of the transition.
	At time.Time

	// Event is the lifecycle event that produced this entry.
	Event Event

	// Actor is the identity of the operator or upstream system that
	// triggered the transition.
	Actor string

	// Metadata carries event-specific immutable attachments, such as the
	// EIR condition and seal number. Nil for most events.
	Metadata map[string]string
}

// Replay folds the transition function over a ledger, starting from Created,
// and returns the resulting state. The cached state field of a container
// record must always equal the replay of its history; the ledger is the
// source of truth and the state field a projection.
func Replay(history []HistoryEntry, cargo CargoStatus) (State, error) {
	state := Created
	for _, entry := range history {
		next, err := Transition(state, entry.Event, cargo)
		if err != nil {
			return StateUnknown, err
		}
		state = next
	}
	return state, nil
}

func copyHistory(history []HistoryEntry) []HistoryEntry {
	if history == nil {
		return nil
	}
	out := make([]HistoryEntry, len(history))
	copy(out, history)
	return out
}

func containsEvent(history []HistoryEntry, event Event) bool {
	for _, entry := range history {
		if entry.Event == event {
			return true
		}
	}
	return false
}
