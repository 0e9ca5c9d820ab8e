/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore
// interface for testing.
package mock

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/storagemodels"
)

var _ datastore.DataStore[struct{}] = (*DataStore[struct{}])(nil)

// DataStore is an in-memory mock of datastore.DataStore[T]. It mimics the
// managed-attribute behavior of the DynamoDB store: Put assigns a key and
// version when absent, Update enforces optimistic locking against the
// stored version.
type DataStore[T any] struct {
	mu          sync.RWMutex
	data        map[string]T
	getKeyFunc  func(entity T) string
	setKeyFunc  func(entity *T, key string)
	scanFunc    func(ctx context.Context, params *storagemodels.ScanParams) ([]T, error)
	streamFunc  func(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	getError    error
	putError    error
	updateError error
	deleteError error
	scanError   error
}

// New creates a new mock DataStore.
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithGetKeyFunc sets a custom function to extract keys from entities.
// Without one, the mock reads a string field named ID via reflection.
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithSetKeyFunc sets a custom function to assign generated keys.
func (m *DataStore[T]) WithSetKeyFunc(f func(*T, string)) *DataStore[T] {
	m.setKeyFunc = f
	return m
}

// WithScanFunc sets a custom scan function for testing.
func (m *DataStore[T]) WithScanFunc(f func(ctx context.Context, params *storagemodels.ScanParams) ([]T, error)) *DataStore[T] {
	m.scanFunc = f
	return m
}

// WithStreamFunc sets a custom stream function for testing.
func (m *DataStore[T]) WithStreamFunc(f func(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]) *DataStore[T] {
	m.streamFunc = f
	return m
}

// WithGetError makes GetOne operations return an error.
func (m *DataStore[T]) WithGetError(err error) *DataStore[T] {
	m.getError = err
	return m
}

// WithPutError makes Put operations return an error.
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithUpdateError makes Update operations return an error.
func (m *DataStore[T]) WithUpdateError(err error) *DataStore[T] {
	m.updateError = err
	return m
}

// WithDeleteError makes Delete operations return an error.
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// WithScanError makes Scan operations return an error.
func (m *DataStore[T]) WithScanError(err error) *DataStore[T] {
	m.scanError = err
	return m
}

// GetOne retrieves an entity by key.
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	if m.getError != nil {
		return nil, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}

	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores an entity, assigning a generated key and version 1 when the
// entity carries none.
func (m *DataStore[T]) Put(ctx context.Context, entity T) (*T, error) {
	if m.putError != nil {
		return nil, m.putError
	}

	key := m.extractKey(entity)
	if key == "" {
		key = uuid.NewString()
		m.assignKey(&entity, key)
	}
	if key == "" {
		return nil, errors.NewValidationError("key", "unable to extract or assign an entity key")
	}
	if version(entity) == 0 {
		setVersion(&entity, 1)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = entity
	return &entity, nil
}

// Update replaces a stored entity when the caller's version matches the
// stored one, then increments the version.
func (m *DataStore[T]) Update(ctx context.Context, entity T) (*T, error) {
	if m.updateError != nil {
		return nil, m.updateError
	}

	key := m.extractKey(entity)
	if key == "" {
		return nil, errors.NewValidationError("key", "unable to extract key from entity")
	}
	expected := version(entity)
	if expected < 1 {
		return nil, errors.NewValidationError("version", "update requires the entity's current version")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.data[key]
	if !exists || version(current) != expected {
		return nil, errors.NewConditionFailedError("update", fmt.Sprintf("version = %d", expected))
	}

	setVersion(&entity, expected+1)
	m.data[key] = entity
	return &entity, nil
}

// Delete removes an entity by key. Deleting an absent key is a no-op.
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Scan returns all stored entities, or delegates to a custom scan function.
func (m *DataStore[T]) Scan(ctx context.Context, params *storagemodels.ScanParams) ([]T, error) {
	if m.scanError != nil {
		return nil, m.scanError
	}
	if m.scanFunc != nil {
		return m.scanFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]T, 0, len(m.data))
	for _, v := range m.data {
		results = append(results, v)
	}
	return results, nil
}

// Stream returns a channel of all stored entities.
func (m *DataStore[T]) Stream(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	if m.streamFunc != nil {
		return m.streamFunc(ctx, params, opts...)
	}

	resultChan := make(chan storagemodels.StreamResult[T], 10)

	go func() {
		defer close(resultChan)

		m.mu.RLock()
		defer m.mu.RUnlock()

		index := int64(0)
		for _, v := range m.data {
			select {
			case <-ctx.Done():
				return
			case resultChan <- storagemodels.StreamResult[T]{
				Item: v,
				Meta: storagemodels.StreamMeta{
					Index:      index,
					PageNumber: 1,
				},
			}:
				index++
			}
		}
	}()

	return resultChan
}

// SetData directly sets the internal data map.
func (m *DataStore[T]) SetData(data map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// GetData returns a copy of the internal data map.
func (m *DataStore[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Len returns the number of stored entities.
func (m *DataStore[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *DataStore[T]) extractKey(entity T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(entity)
	}

	v := reflect.ValueOf(entity)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	f := v.FieldByName("ID")
	if f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}
	return ""
}

func (m *DataStore[T]) assignKey(entity *T, key string) {
	if m.setKeyFunc != nil {
		m.setKeyFunc(entity, key)
		return
	}

	v := reflect.ValueOf(entity).Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	f := v.FieldByName("ID")
	if f.IsValid() && f.Kind() == reflect.String && f.CanSet() {
		f.SetString(key)
	}
}

func version[T any](entity T) int64 {
	v := reflect.ValueOf(entity)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return 0
	}
	f := v.FieldByName("Version")
	if f.IsValid() && f.CanInt() {
		return f.Int()
	}
	return 0
}

func setVersion[T any](entity *T, version int64) {
	v := reflect.ValueOf(entity).Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	f := v.FieldByName("Version")
	if f.IsValid() && f.CanInt() && f.CanSet() {
		f.SetInt(version)
	}
}
