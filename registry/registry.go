/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/tablestore/schema"
)

// Registry is a thread-safe collection of table schemas keyed by table
// name. It is built once at startup from the configured entity set and
// handed to the lifecycle manager, which provisions every registered
// schema before the application is considered ready.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*schema.Schema
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		schemas: make(map[string]*schema.Schema),
	}
}

// Register adds a schema under its table name.
// Registering the same table name twice is an error.
func (r *Registry) Register(s *schema.Schema) error {
	if s == nil {
		return fmt.Errorf("registry: nil schema")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.TableName()
	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("registry: schema for table %q already registered", name)
	}
	r.schemas[name] = s
	return nil
}

// Get retrieves the schema registered for a table name.
func (r *Registry) Get(tableName string) (*schema.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[tableName]
	return s, ok
}

// Schemas returns a copy of the registered schemas keyed by table name.
func (r *Registry) Schemas() map[string]*schema.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*schema.Schema, len(r.schemas))
	for name, s := range r.schemas {
		out[name] = s
	}
	return out
}

// Names returns the registered table names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}
