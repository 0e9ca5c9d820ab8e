/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/tablestore/schema"
)

// The type index associates Go entity types with their table schemas so
// that typed datastores can resolve their schema without extra wiring.

var (
	typeIndex = make(map[reflect.Type]*schema.Schema)
	mu        sync.RWMutex
)

// RegisterSchemaFor associates the Go type T with a table schema.
func RegisterSchemaFor[T any](s *schema.Schema) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	typeIndex[t] = s
}

// SchemaFor retrieves the schema registered for type T, if any.
func SchemaFor[T any]() (*schema.Schema, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	s, ok := typeIndex[t]
	return s, ok
}
