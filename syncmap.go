package ksoft

import "sync"

// SyncMap is a synchronized map that can be accessed concurrently.
type SyncMap[K comparable, V any] struct {
	sync.RWMutex
	M map[K]V
}

// Set adds or updates a key-value pair in the SyncMap.
func (sm *SyncMap[K, V]) Set(key K, val V) {
	sm.Lock()
	defer sm.Unlock()

	sm.M[key] = val
}

// Get retrieves the value associated with the specified key from the SyncMap.
//
// Returns:
//   - V: The value associated with the key.
//   - bool: True if the key exists in the map, false otherwise.
func (sm *SyncMap[K, V]) Get(key K) (val V, ok bool) {
	sm.RLock()
	defer sm.RUnlock()

	val, ok = sm.M[key]

	return
}

// Del removes the key-value pair with the specified key from the SyncMap.
func (sm *SyncMap[K, V]) Del(key K) {
	sm.Lock()
	defer sm.Unlock()

	delete(sm.M, key)
}

// Len returns the number of key-value pairs in the SyncMap.
func (sm *SyncMap[K, V]) Len() int {
	sm.RLock()
	defer sm.RUnlock()

	return len(sm.M)
}

// NewSyncMap creates a new instance of SyncMap.
func NewSyncMap[K comparable, V any]() SyncMap[K, V] {
	return SyncMap[K, V]{M: map[K]V{}}
}

// OrderedSyncMap is a synchronized map that maintains the order of keys.
//
// Setting an existing key again is a no-op that keeps the key at its
// original position, which is what the hook registry relies on for
// idempotent registration.
type OrderedSyncMap[K comparable, V any] struct {
	sync.RWMutex
	K []K
	M map[K]V
}

// Set adds a key-value pair to the OrderedSyncMap.
// If the key is already present the map is left untouched.
func (sm *OrderedSyncMap[K, V]) Set(key K, val V) {
	sm.Lock()
	defer sm.Unlock()

	if _, ok := sm.M[key]; ok {
		return
	}

	sm.K = append(sm.K, key)
	sm.M[key] = val
}

// Get retrieves the value associated with the specified key from the OrderedSyncMap.
//
// Returns:
//   - V: The value associated with the key.
//   - bool: True if the key exists in the map, false otherwise.
func (sm *OrderedSyncMap[K, V]) Get(key K) (val V, ok bool) {
	sm.RLock()
	defer sm.RUnlock()

	val, ok = sm.M[key]

	return
}

// Del removes the key-value pair with the specified key from the OrderedSyncMap.
// It is a no-op if the key is absent.
func (sm *OrderedSyncMap[K, V]) Del(key K) {
	sm.Lock()
	defer sm.Unlock()

	if _, ok := sm.M[key]; !ok {
		return
	}

	for i, k := range sm.K {
		if k == key {
			sm.K = append(sm.K[:i], sm.K[i+1:]...)
			break
		}
	}
	delete(sm.M, key)
}

// Len returns the number of key-value pairs in the OrderedSyncMap.
func (sm *OrderedSyncMap[K, V]) Len() int {
	sm.RLock()
	defer sm.RUnlock()

	return len(sm.M)
}

// Values returns a snapshot of the values in insertion order.
//
// The returned slice is a copy, so callers may iterate it while other
// goroutines mutate the map.
func (sm *OrderedSyncMap[K, V]) Values() []V {
	sm.RLock()
	defer sm.RUnlock()

	vals := make([]V, 0, len(sm.K))
	for _, k := range sm.K {
		vals = append(vals, sm.M[k])
	}

	return vals
}

// NewOrderedSyncMap creates a new instance of OrderedSyncMap.
func NewOrderedSyncMap[K comparable, V any]() OrderedSyncMap[K, V] {
	return OrderedSyncMap[K, V]{K: []K{}, M: map[K]V{}}
}
