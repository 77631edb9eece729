package ports

import (
	"context"

	"yardgate/internal/core/domain/model/yard"
)

// YardSlotRepository defines the persistence contract for the yard slot
// registry. The slot table has exactly one row per physical slot; rows are
// seeded once and only their binding changes.
type YardSlotRepository interface {
	// EnsureCapacity seeds the slot table up to the given capacity. Existing
	// rows and their bindings are left untouched, so calling it on every
	// startup is safe.
	EnsureCapacity(ctx context.Context, capacity int) error

	// GetArena loads every slot row and reconstructs the arena.
	GetArena(ctx context.Context) (*yard.Arena, error)

	// SaveSlot persists one slot's binding (bound or cleared).
	SaveSlot(ctx context.Context, slot yard.Slot) error
}
