/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablestore

import (
	"context"
	"fmt"
	"testing"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/storagemodels"
)

// stubDataStore is a minimal DataStore implementation for storage tests.
type stubDataStore[T any] struct {
	data map[string]T
}

func newStubDataStore[T any]() datastore.DataStore[T] {
	return &stubDataStore[T]{data: make(map[string]T)}
}

func (m *stubDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	if v, ok := m.data[key]; ok {
		return &v, nil
	}
	return nil, fmt.Errorf("not found")
}

func (m *stubDataStore[T]) Put(ctx context.Context, entity T) (*T, error) {
	return &entity, nil
}

func (m *stubDataStore[T]) Update(ctx context.Context, entity T) (*T, error) {
	return &entity, nil
}

func (m *stubDataStore[T]) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *stubDataStore[T]) Scan(ctx context.Context, params *storagemodels.ScanParams) ([]T, error) {
	return nil, nil
}

func (m *stubDataStore[T]) Stream(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	ch := make(chan storagemodels.StreamResult[T])
	close(ch)
	return ch
}

type testUser struct {
	ID   string
	Name string
}

type testOrder struct {
	ID    string
	Total float64
}

func TestTypedStorage(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		storage := NewTypedStorage[testUser]()

		if err := storage.Register("users", newStubDataStore[testUser]()); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		if err := storage.Register("users", newStubDataStore[testUser]()); err == nil {
			t.Error("Expected duplicate registration to fail")
		}

		ds, err := storage.Get("users")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if ds == nil {
			t.Fatal("Expected a datastore")
		}

		if keys := storage.List(); len(keys) != 1 || keys[0] != "users" {
			t.Errorf("Unexpected keys: %v", keys)
		}

		if err := storage.Remove("users"); err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}
		if _, err := storage.Get("users"); err == nil {
			t.Error("Expected get after remove to fail")
		}
	})
}

func TestMultiTypeStorage(t *testing.T) {
	mts := NewMultiTypeStorage()

	if err := RegisterDataStore(mts, "users", newStubDataStore[testUser]()); err != nil {
		t.Fatalf("Failed to register users store: %v", err)
	}
	if err := RegisterDataStore(mts, "orders", newStubDataStore[testOrder]()); err != nil {
		t.Fatalf("Failed to register orders store: %v", err)
	}

	// Same key under a different type does not clash.
	if err := RegisterDataStore(mts, "users", newStubDataStore[testOrder]()); err != nil {
		t.Fatalf("Keys should be scoped per type: %v", err)
	}

	userStore, err := GetDataStore[testUser](mts, "users")
	if err != nil {
		t.Fatalf("Failed to get users store: %v", err)
	}
	if userStore == nil {
		t.Fatal("Expected a users datastore")
	}

	if keys := ListDataStores[testOrder](mts); len(keys) != 2 {
		t.Errorf("Expected 2 order-typed stores, got %v", keys)
	}

	if err := RemoveDataStore[testUser](mts, "users"); err != nil {
		t.Fatalf("Failed to remove: %v", err)
	}
	if _, err := GetDataStore[testUser](mts, "users"); err == nil {
		t.Error("Expected get after remove to fail")
	}
}

func TestStorageManager(t *testing.T) {
	sm := NewStorageManager()

	if err := sm.RegisterDataStore("product", newStubDataStore[testUser]()); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	if err := sm.RegisterDataStore("product", newStubDataStore[testUser]()); err == nil {
		t.Error("Expected duplicate registration to fail")
	}

	ds, err := sm.GetDataStore("product")
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	if _, ok := ds.(datastore.DataStore[testUser]); !ok {
		t.Errorf("Unexpected datastore type %T", ds)
	}

	if keys := sm.Keys(); len(keys) != 1 || keys[0] != "product" {
		t.Errorf("Unexpected keys: %v", keys)
	}

	if _, err := sm.GetDataStore("absent"); err == nil {
		t.Error("Expected missing key to fail")
	}
}
