// Package yard implements the yard slot registry: a fixed-capacity arena of
// physical slots, each either empty or bound to exactly one container record.
// The arena owns spatial assignment only; it knows nothing about lifecycle
// state.
package yard

import (
	"container/heap"
	"errors"

	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/errs"
)

var (
	// ErrArenaIsNotConstructed is returned when an Arena instance was not
	// created through NewArena or RestoreArena.
	ErrArenaIsNotConstructed = errors.New("Arena must be created via NewArena or RestoreArena")
)

// Slot is one physical yard position. The zero containerID marks an empty slot.
type Slot struct {
	// Index is the stable slot identifier (the container record's internalId).
	Index int

	// ContainerID is the bound record's identity; zero when empty.
	ContainerID kernel.UUID

	// Occupied reports whether the slot is currently bound.
	Occupied bool
}

// freeIndexHeap is a min-heap of free slot indices, so allocation always
// picks the lowest-index empty slot deterministically.
type freeIndexHeap []int

func (h freeIndexHeap) Len() int            { return len(h) }
func (h freeIndexHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h freeIndexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *freeIndexHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *freeIndexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Arena is the fixed-capacity slot registry. It enforces slot exclusivity:
// no two allocations can bind the same slot, and one container occupies at
// most one slot. Allocation and release must be serialized by the caller
// (one global allocation lock); the arena itself performs no locking.
type Arena struct {
	slots []Slot
	free  freeIndexHeap

	isConstructed bool
}

// NewArena creates an empty arena with the given number of slots.
func NewArena(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, errs.NewValueIsInvalidError("capacity")
	}

	slots := make([]Slot, capacity)
	free := make(freeIndexHeap, 0, capacity)
	for i := range slots {
		slots[i] = Slot{Index: i}
		free = append(free, i)
	}
	heap.Init(&free)

	return &Arena{slots: slots, free: free, isConstructed: true}, nil
}

// RestoreArena reconstructs an arena from persisted slot bindings.
// Duplicate container bindings are rejected to uphold slot exclusivity.
func RestoreArena(capacity int, occupied map[int]kernel.UUID) (*Arena, error) {
	arena, err := NewArena(capacity)
	if err != nil {
		return nil, err
	}

	seen := make(map[kernel.UUID]struct{}, len(occupied))
	for index, containerID := range occupied {
		if index < 0 || index >= capacity {
			return nil, errs.NewValueIsOutOfRangeError("slotIndex", index, 0, capacity-1)
		}
		if err = containerID.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[containerID]; dup {
			return nil, errs.NewValueIsInvalidError("containerId")
		}
		seen[containerID] = struct{}{}

		arena.slots[index].ContainerID = containerID
		arena.slots[index].Occupied = true
	}

	free := make(freeIndexHeap, 0, capacity)
	for i := range arena.slots {
		if !arena.slots[i].Occupied {
			free = append(free, i)
		}
	}
	heap.Init(&free)
	arena.free = free

	return arena, nil
}

// Validate ensures the Arena instance was properly constructed.
func (a *Arena) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrArenaIsNotConstructed
	}
	return nil
}

// Capacity returns the fixed number of slots.
func (a *Arena) Capacity() int {
	return len(a.slots)
}

// OccupiedCount returns the number of currently bound slots.
func (a *Arena) OccupiedCount() int {
	return len(a.slots) - len(a.free)
}

// Allocate binds the lowest-index empty slot to the given container and
// returns its index. When every slot is bound it fails with
// CapacityExceededError. A container already occupying a slot cannot be
// allocated a second one.
func (a *Arena) Allocate(containerID kernel.UUID) (int, error) {
	if err := containerID.Validate(); err != nil {
		return 0, err
	}
	if _, found := a.FindByContainer(containerID); found {
		return 0, errs.NewValueIsInvalidError("containerId")
	}
	if len(a.free) == 0 {
		return 0, errs.NewCapacityExceededError(len(a.slots))
	}

	index := heap.Pop(&a.free).(int)
	a.slots[index].ContainerID = containerID
	a.slots[index].Occupied = true
	return index, nil
}

// Release clears the binding of the given slot, returning it to the free
// list. Releasing an empty slot fails with NotOccupiedError.
func (a *Arena) Release(index int) error {
	if index < 0 || index >= len(a.slots) {
		return errs.NewValueIsOutOfRangeError("slotIndex", index, 0, len(a.slots)-1)
	}
	if !a.slots[index].Occupied {
		return errs.NewNotOccupiedError(index)
	}

	a.slots[index] = Slot{Index: index}
	heap.Push(&a.free, index)
	return nil
}

// Lookup returns the slot at the given index.
func (a *Arena) Lookup(index int) (Slot, error) {
	if index < 0 || index >= len(a.slots) {
		return Slot{}, errs.NewValueIsOutOfRangeError("slotIndex", index, 0, len(a.slots)-1)
	}
	return a.slots[index], nil
}

// FindByContainer returns the index of the slot bound to the given container.
func (a *Arena) FindByContainer(containerID kernel.UUID) (int, bool) {
	for i := range a.slots {
		if a.slots[i].Occupied && a.slots[i].ContainerID.IsEqual(containerID) {
			return i, true
		}
	}
	return 0, false
}

// Slots returns a copy of all slots, in index order.
func (a *Arena) Slots() []Slot {
	out := make([]Slot, len(a.slots))
	copy(out, a.slots)
	return out
}
