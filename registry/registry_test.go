/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/suparena/tablestore/schema"
)

type Gadget struct {
	ID string
}

func mustSchema(t *testing.T, table string) *schema.Schema {
	t.Helper()
	s, err := schema.New(table, schema.Attribute{Name: "id"})
	if err != nil {
		t.Fatalf("schema.New failed: %v", err)
	}
	return s
}

func TestRegistry(t *testing.T) {
	t.Run("RegisterAndGet", func(t *testing.T) {
		r := New()
		s := mustSchema(t, "gadget")

		if err := r.Register(s); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		got, ok := r.Get("gadget")
		if !ok || got != s {
			t.Error("Get should return the registered schema")
		}
		if r.Len() != 1 {
			t.Errorf("Expected 1 schema, got %d", r.Len())
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		r := New()
		if err := r.Register(mustSchema(t, "gadget")); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if err := r.Register(mustSchema(t, "gadget")); err == nil {
			t.Error("Expected error on duplicate registration")
		}
	})

	t.Run("NilSchema", func(t *testing.T) {
		r := New()
		if err := r.Register(nil); err == nil {
			t.Error("Expected error for nil schema")
		}
	})

	t.Run("SchemasReturnsCopy", func(t *testing.T) {
		r := New()
		if err := r.Register(mustSchema(t, "gadget")); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		m := r.Schemas()
		delete(m, "gadget")

		if _, ok := r.Get("gadget"); !ok {
			t.Error("Mutating the returned map must not affect the registry")
		}
	})

	t.Run("NamesSorted", func(t *testing.T) {
		r := New()
		for _, name := range []string{"zeta", "alpha", "mid"} {
			if err := r.Register(mustSchema(t, name)); err != nil {
				t.Fatalf("Register failed: %v", err)
			}
		}

		names := r.Names()
		want := []string{"alpha", "mid", "zeta"}
		for i, n := range want {
			if names[i] != n {
				t.Fatalf("Expected %v, got %v", want, names)
			}
		}
	})
}

func TestTypeIndex(t *testing.T) {
	s := mustSchema(t, "gadget")
	RegisterSchemaFor[Gadget](s)

	got, ok := SchemaFor[Gadget]()
	if !ok || got != s {
		t.Error("SchemaFor should return the schema registered for the type")
	}

	if _, ok := SchemaFor[int](); ok {
		t.Error("SchemaFor should miss for unregistered types")
	}
}
