/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/primer/datastore"
	"github.com/suparena/primer/datastore/memory"
	"github.com/suparena/primer/errors"
	"github.com/suparena/primer/storagemodels"
)

type TestEntity struct {
	Name string
}

// compile-time check
var _ datastore.DataStore[TestEntity] = (*memory.DataStore[TestEntity])(nil)

func TestMemoryDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		store := memory.New[TestEntity]().WithTypeName("TestEntity")

		require.NoError(t, store.Put(ctx, 7, TestEntity{Name: "seven"}))

		got, err := store.GetOne(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "seven", got.Name)

		_, err = store.GetOne(ctx, 8)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, `TestEntity with key "8" not found`, err.Error())
	})

	t.Run("InsertionOrder", func(t *testing.T) {
		store := memory.New[TestEntity]()
		for _, id := range []int{3, 1, 2} {
			require.NoError(t, store.Put(ctx, id, TestEntity{Name: "v"}))
		}
		// Overwrite keeps the original position.
		require.NoError(t, store.Put(ctx, 1, TestEntity{Name: "updated"}))

		items, err := store.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []int{3, 1, 2}, []int{items[0].ID, items[1].ID, items[2].ID})
		assert.Equal(t, "updated", items[1].Entity.Name)
	})

	t.Run("Paging", func(t *testing.T) {
		store := memory.New[TestEntity]()
		for id := 1; id <= 5; id++ {
			require.NoError(t, store.Put(ctx, id, TestEntity{}))
		}

		items, err := store.List(ctx, &storagemodels.QueryParams{Offset: 1, Limit: 2})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 2, items[0].ID)
		assert.Equal(t, 3, items[1].ID)

		_, err = store.List(ctx, &storagemodels.QueryParams{Limit: -1})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		putErr := stderrors.New("disk full")
		listErr := stderrors.New("unavailable")
		store := memory.New[TestEntity]().WithPutError(putErr).WithListError(listErr)

		assert.ErrorIs(t, store.Put(ctx, 1, TestEntity{}), putErr)
		_, err := store.List(ctx, nil)
		assert.ErrorIs(t, err, listErr)
	})

	t.Run("HelperMethods", func(t *testing.T) {
		store := memory.New[TestEntity]()
		require.NoError(t, store.Put(ctx, 1, TestEntity{}))
		require.NoError(t, store.Put(ctx, 2, TestEntity{}))
		assert.Equal(t, 2, store.Count())

		store.Clear()
		assert.Equal(t, 0, store.Count())
		items, err := store.List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, store.Close())
	})
}

func TestMaxID(t *testing.T) {
	ctx := context.Background()
	store := memory.New[TestEntity]()

	_, ok, err := datastore.MaxID[TestEntity](ctx, store)
	require.NoError(t, err)
	assert.False(t, ok)

	for _, id := range []int{2, 9, 4} {
		require.NoError(t, store.Put(ctx, id, TestEntity{}))
	}
	maxID, ok, err := datastore.MaxID[TestEntity](ctx, store)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9, maxID)
}

func TestMemoryDataStoreConcurrency(t *testing.T) {
	ctx := context.Background()
	store := memory.New[TestEntity]()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = store.Put(ctx, id, TestEntity{})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx, nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, store.Count())
}
