package ports

import (
	"context"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for container record
// aggregates. The record and its history ledger are persisted together: a
// state update is never visible without its corresponding ledger entry.
type ContainerRepository interface {
	// Add persists a new container record with its initial history.
	Add(ctx context.Context, aggregate *container.Container) error

	// Update persists changes to an existing record, appending any new
	// history entries atomically with the state field.
	Update(ctx context.Context, aggregate *container.Container) error

	// Get retrieves a record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*container.Container, error)

	// GetByInternalID retrieves the record currently bound to the given
	// yard slot index. Only non-closed records occupy slots.
	GetByInternalID(ctx context.Context, internalID int) (*container.Container, error)

	// GetActiveByNumber retrieves the non-closed record for a container
	// number, if one is occupying the yard. Closed records are retained for
	// audit but are not active.
	GetActiveByNumber(ctx context.Context, containerNumber string) (*container.Container, error)
}
