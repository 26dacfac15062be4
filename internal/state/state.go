// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package state provides a thread-safe key-value store for values that are
// created once during startup and looked up by name afterwards, such as
// window handles. A Store is an explicit value owned by whoever creates it;
// there is no package-level instance.
//
// Functions:
//   - Get[T any](s, key) (value T, ok bool): typed lookup
//   - Set[T any](s, key, value): store a value
//   - SetOnce[T any](s, key, value) bool: store unless the key exists
//   - (*Store).Delete, (*Store).Clear, (*Store).Keys
//
// Usage example:
//
//	s := state.New()
//	state.Set(s, "main", w)
//	w, ok := state.Get[window.Window](s, "main")
package state

import (
	"sort"
	"sync"
)

// Store is a mutex-guarded map of named values.
type Store struct {
	mu   sync.RWMutex
	data map[string]any
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string]any)}
}

// Get retrieves the value stored under key as a T. It returns the zero value
// and false when the key is missing or holds a value of another type.
func Get[T any](s *Store, key string) (value T, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		var zero T
		return zero, false
	}

	value, ok = v.(T)
	return
}

// Set stores value under key, replacing any previous value.
func Set[T any](s *Store, key string, value T) {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
}

// SetOnce stores value under key unless the key is already present. It
// reports whether the value was stored.
func SetOnce[T any](s *Store, key string, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; exists {
		return false
	}
	s.data[key] = value
	return true
}

// Delete removes key.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	s.data = make(map[string]any)
	s.mu.Unlock()
}

// Keys lists the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
