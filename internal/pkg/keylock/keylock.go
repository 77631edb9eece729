// Package keylock provides per-key mutual exclusion for serializing all
// mutating operations on a single container identity, while operations on
// different containers proceed in parallel.
package keylock

import "sync"

// KeyedMutex serializes critical sections per string key. Locks are created
// lazily on first use and retained for the life of the process; the key space
// (container numbers bound to yard slots) is bounded by yard capacity.
//
// Example usage:
//
//	var locks keylock.KeyedMutex
//
//	unlock := locks.Lock(containerNumber)
//	defer unlock()
//	// ... mutate the container record
type KeyedMutex struct {
	mutexes sync.Map // key -> *sync.Mutex
}

// Lock acquires the mutex for the given key, creating it if necessary.
// It returns the corresponding unlock function.
func (k *KeyedMutex) Lock(key string) func() {
	value, _ := k.mutexes.LoadOrStore(key, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
