package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and gives access to repositories bound to
// the same transaction, so a container's state field and its ledger rows
// commit or roll back as one atomic unit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ContainerRepository returns a ContainerRepository bound to the current transaction.
	ContainerRepository() ContainerRepository

	// ScheduleRepository returns a ScheduleRepository bound to the current transaction.
	ScheduleRepository() ScheduleRepository

	// GateLogRepository returns a GateLogRepository bound to the current transaction.
	GateLogRepository() GateLogRepository

	// YardSlotRepository returns a YardSlotRepository bound to the current transaction.
	YardSlotRepository() YardSlotRepository
}
