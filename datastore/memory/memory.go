/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides an in-memory implementation of the DataStore interface
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/apex/log"

	"github.com/suparena/primer/errors"
	"github.com/suparena/primer/storagemodels"
)

// DataStore is an in-memory implementation of datastore.DataStore[T].
// It remembers the order in which ids were first stored.
type DataStore[T any] struct {
	mu        sync.RWMutex
	data      map[int]T
	order     []int
	typeName  string
	putError  error
	listError error
}

// New creates a new, empty memory DataStore
func New[T any]() *DataStore[T] {
	var zero T
	return &DataStore[T]{
		data:     make(map[int]T),
		typeName: fmt.Sprintf("%T", zero),
	}
}

// WithTypeName sets the entity name used in not found errors
func (m *DataStore[T]) WithTypeName(name string) *DataStore[T] {
	m.typeName = name
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithListError makes List operations return an error
func (m *DataStore[T]) WithListError(err error) *DataStore[T] {
	m.listError = err
	return m
}

// GetOne retrieves an entity by id
func (m *DataStore[T]) GetOne(ctx context.Context, id int) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[id]; exists {
		return &entity, nil
	}

	return nil, errors.NewNotFoundError(m.typeName, strconv.Itoa(id))
}

// Put stores an entity
func (m *DataStore[T]) Put(ctx context.Context, id int, entity T) error {
	if m.putError != nil {
		return m.putError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[id]; !exists {
		m.order = append(m.order, id)
	}
	m.data[id] = entity

	log.WithFields(log.Fields{"type": m.typeName, "id": id}).Debug("memory put")
	return nil
}

// List returns stored entities in insertion order
func (m *DataStore[T]) List(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.Item[T], error) {
	if m.listError != nil {
		return nil, m.listError
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	start, end := params.Window(len(m.order))
	results := make([]storagemodels.Item[T], 0, end-start)
	for _, id := range m.order[start:end] {
		results = append(results, storagemodels.Item[T]{ID: id, Entity: m.data[id]})
	}

	return results, nil
}

// Close is a no-op
func (m *DataStore[T]) Close() error {
	return nil
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[int]T)
	m.order = nil
}
