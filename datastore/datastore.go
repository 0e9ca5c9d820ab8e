/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/tablestore/storagemodels"
)

// DataStore provides typed item-level access to one managed table.
type DataStore[T any] interface {
	// GetOne retrieves a single entity by its partition key value.
	// Returns a NotFoundError when no item exists.
	GetOne(ctx context.Context, key string) (*T, error)

	// Put stores the entity, filling managed attributes (generated key,
	// timestamps, initial version) as declared by the table schema.
	Put(ctx context.Context, entity T) (*T, error)

	// Update writes the entity conditionally on its current
	// optimistic-lock version and increments it. A stale version yields
	// a ConditionFailedError.
	Update(ctx context.Context, entity T) (*T, error)

	// Delete removes the entity with the given partition key value.
	Delete(ctx context.Context, key string) error

	// Scan returns all entities matching the optional filter.
	Scan(ctx context.Context, params *storagemodels.ScanParams) ([]T, error)

	// Stream scans the table in the background and delivers entities on
	// the returned channel, which closes when the scan completes.
	Stream(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
}
