/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package primer

import (
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/primer/datastore"
	"github.com/suparena/primer/errors"
)

// TypedStorage keeps named datastores for a specific type T
type TypedStorage[T any] struct {
	mu     sync.RWMutex
	stores map[string]datastore.DataStore[T]
}

// NewTypedStorage creates a new TypedStorage for type T
func NewTypedStorage[T any]() *TypedStorage[T] {
	return &TypedStorage[T]{
		stores: make(map[string]datastore.DataStore[T]),
	}
}

// Register adds a datastore with the given key
func (ts *TypedStorage[T]) Register(key string, ds datastore.DataStore[T]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.stores[key]; exists {
		return errors.NewAlreadyExistsError("datastore", key)
	}

	ts.stores[key] = ds
	return nil
}

// Get retrieves a datastore by key
func (ts *TypedStorage[T]) Get(key string) (datastore.DataStore[T], error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	ds, exists := ts.stores[key]
	if !exists {
		return nil, errors.NewNotFoundError("datastore", key)
	}

	return ds, nil
}

// List returns all registered datastore keys, sorted
func (ts *TypedStorage[T]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.stores))
	for k := range ts.stores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// closeAll closes every registered datastore and returns the first error
func (ts *TypedStorage[T]) closeAll() error {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	var first error
	for _, ds := range ts.stores {
		if err := ds.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type closer interface {
	closeAll() error
}

// MultiTypeStorage manages TypedStorage instances for different types
type MultiTypeStorage struct {
	mu       sync.RWMutex
	storages map[reflect.Type]closer
}

// NewMultiTypeStorage creates a new MultiTypeStorage
func NewMultiTypeStorage() *MultiTypeStorage {
	return &MultiTypeStorage{
		storages: make(map[reflect.Type]closer),
	}
}

// Close closes every datastore of every type
func (mts *MultiTypeStorage) Close() error {
	mts.mu.RLock()
	defer mts.mu.RUnlock()

	var first error
	for _, s := range mts.storages {
		if err := s.closeAll(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// GetTypedStorage returns a TypedStorage for the specified type, creating it if necessary
func GetTypedStorage[T any](mts *MultiTypeStorage) *TypedStorage[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	typ := reflect.TypeFor[T]()

	if storage, exists := mts.storages[typ]; exists {
		return storage.(*TypedStorage[T])
	}

	newStorage := NewTypedStorage[T]()
	mts.storages[typ] = newStorage
	return newStorage
}

// RegisterDataStore is a convenience function to register a datastore for type T
func RegisterDataStore[T any](mts *MultiTypeStorage, key string, ds datastore.DataStore[T]) error {
	return GetTypedStorage[T](mts).Register(key, ds)
}

// GetDataStore is a convenience function to get a datastore for type T
func GetDataStore[T any](mts *MultiTypeStorage, key string) (datastore.DataStore[T], error) {
	return GetTypedStorage[T](mts).Get(key)
}

// ListDataStores is a convenience function to list all datastores for type T
func ListDataStores[T any](mts *MultiTypeStorage) []string {
	return GetTypedStorage[T](mts).List()
}
