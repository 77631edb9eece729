// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, locking, transaction
// management, and persistence.
package commands

import (
	"context"
	"fmt"

	"yardgate/internal/core/ports"
)

// allocationKey serializes every command that binds or seeds a yard slot.
// Slot allocation reads the free list and writes one row; two concurrent
// allocations without this lock could pick the same slot.
const allocationKey = "yard/allocation"

// containerKey is the lock key for commands addressing a record by its
// external container number.
func containerKey(containerNumber string) string {
	return "container/" + containerNumber
}

// slotKey is the lock key for commands addressing a record by its yard slot.
func slotKey(internalID int) string {
	return fmt.Sprintf("slot/%d", internalID)
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ContainerRepoFactory provides access to the container repository within a transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// ScheduleRepoFactory provides access to the schedule repository within a transaction.
	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	// GateLogRepoFactory provides access to the gate movement ledger within a transaction.
	GateLogRepoFactory interface {
		GateLogRepository() ports.GateLogRepository
	}

	// YardSlotRepoFactory provides access to the yard slot registry within a transaction.
	YardSlotRepoFactory interface {
		YardSlotRepository() ports.YardSlotRepository
	}

	// ContainerUoW manages transactions for record-only operations.
	// Used when commands only advance a single container record.
	ContainerUoW interface {
		TxManager
		ContainerRepoFactory
	}

	// ContainerUoWFactory creates new container unit of work instances.
	ContainerUoWFactory interface {
		Create() ContainerUoW
	}

	// ScheduleUoW manages transactions for schedule-only operations.
	ScheduleUoW interface {
		TxManager
		ScheduleRepoFactory
	}

	// ScheduleUoWFactory creates new schedule unit of work instances.
	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}

	// UoW manages transactions across all yard aggregates. Used for commands
	// that coordinate a container record with the slot registry, the gate
	// ledger, or a schedule.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   containerRepo := uow.ContainerRepository()
	//   slotRepo := uow.YardSlotRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ContainerRepoFactory
		ScheduleRepoFactory
		GateLogRepoFactory
		YardSlotRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
