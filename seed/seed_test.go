/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package seed

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/suparena/tablestore/catalog"
	"github.com/suparena/tablestore/datastore/mock"
	"github.com/suparena/tablestore/models"
)

func TestLoad(t *testing.T) {
	store := mock.New[models.Product]()
	repo := catalog.NewRepository(store, nil)

	if err := Load(context.Background(), repo, nil); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store.Len() != 4 {
		t.Errorf("Expected 4 seeded products, got %d", store.Len())
	}

	electronics, err := repo.FindByCategory(context.Background(), "Electronics")
	if err != nil {
		t.Fatalf("FindByCategory failed: %v", err)
	}
	// The mock's default scan ignores filters and returns everything.
	if len(electronics) != 4 {
		t.Errorf("Expected scan over 4 products, got %d", len(electronics))
	}
}

func TestLoadStopsOnFailure(t *testing.T) {
	boom := stderrors.New("boom")
	store := mock.New[models.Product]().WithPutError(boom)
	repo := catalog.NewRepository(store, nil)

	if err := Load(context.Background(), repo, nil); !stderrors.Is(err, boom) {
		t.Errorf("Expected the injected error, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expected no products stored, got %d", store.Len())
	}
}
