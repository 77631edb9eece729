package ports

import (
	"context"

	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/schedule"
)

// ScheduleRepository defines the persistence contract for pre-arrival
// appointment aggregates. Schedules are never deleted.
type ScheduleRepository interface {
	// Add persists a new schedule.
	Add(ctx context.Context, aggregate *schedule.Schedule) error

	// Update persists changes to an existing schedule (confirmation).
	Update(ctx context.Context, aggregate *schedule.Schedule) error

	// Get retrieves a schedule by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error)

	// GetAllPending retrieves every schedule still in the PENDENTE status,
	// oldest appointment date first.
	GetAllPending(ctx context.Context) ([]*schedule.Schedule, error)
}
