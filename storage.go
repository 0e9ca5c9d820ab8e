/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablestore

import (
	"fmt"
	"sort"
	"sync"
)

// Storage manages a collection of DataStore instances under string keys.
// Its methods are not generic; callers type-assert the returned value to
// the appropriate DataStore type. Prefer TypedStorage when the entity type
// is known at the call site.
type Storage interface {
	// RegisterDataStore registers a DataStore under a given key.
	RegisterDataStore(key string, ds any) error
	// GetDataStore retrieves the registered DataStore for a given key.
	GetDataStore(key string) (any, error)
	// Keys returns the registered keys in sorted order.
	Keys() []string
}

// storageManager is a thread-safe implementation of the Storage interface.
type storageManager struct {
	mu     sync.RWMutex
	stores map[string]any
}

// NewStorageManager creates and returns a new Storage implementation.
func NewStorageManager() Storage {
	return &storageManager{
		stores: make(map[string]any),
	}
}

func (sm *storageManager) RegisterDataStore(key string, ds any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; exists {
		return fmt.Errorf("datastore with key %q already registered", key)
	}
	sm.stores[key] = ds
	return nil
}

func (sm *storageManager) GetDataStore(key string) (any, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	ds, exists := sm.stores[key]
	if !exists {
		return nil, fmt.Errorf("datastore with key %q not found", key)
	}
	return ds, nil
}

func (sm *storageManager) Keys() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	keys := make([]string, 0, len(sm.stores))
	for k := range sm.stores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
