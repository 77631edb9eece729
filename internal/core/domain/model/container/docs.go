// Package container implements the container record aggregate and its
// lifecycle state machine.
//
// The aggregate is the single source of truth for one container's stay in
// the yard: its identity, yard slot binding, cargo status, billing flag, and
// the append-only event ledger. The cached state field is always derivable
// by replaying the ledger through the pure Transition function; Replay
// enforces this invariant on reconstruction from persistence.
//
// All state mutation goes through guarded event methods. An event that is
// not valid from the current state is rejected with an
// InvalidTransitionError and leaves the record unchanged.
package container
