/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package disk

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/primer/errors"
	"github.com/suparena/primer/storagemodels"
)

type testEntity struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultPath, resolvePath(""))
	assert.Equal(t, DefaultPath, resolvePath("   "))
	assert.Equal(t, DefaultPath, resolvePath("data/"))
	assert.Equal(t, filepath.Clean("data/users.db"), resolvePath(" data/./users.db "))
}

func TestDiskDataStore_PutGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := New[testEntity](openTestDB(t), "users")
	require.NoError(t, err)
	store.WithTypeName("User")

	require.NoError(t, store.Put(ctx, 1, testEntity{Name: "Alice", Age: 25}))

	got, err := store.GetOne(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, testEntity{Name: "Alice", Age: 25}, *got)

	_, err = store.GetOne(ctx, 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, `User with key "999" not found`, err.Error())
}

func TestDiskDataStore_InsertionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := New[testEntity](openTestDB(t), "users")
	require.NoError(t, err)

	for _, id := range []int{10, 2, 7} {
		require.NoError(t, store.Put(ctx, id, testEntity{Name: "v"}))
	}
	require.NoError(t, store.Put(ctx, 2, testEntity{Name: "updated"}))

	items, err := store.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 10, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
	assert.Equal(t, "updated", items[1].Entity.Name)
	assert.Equal(t, 7, items[2].ID)

	page, err := store.List(ctx, &storagemodels.QueryParams{Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, 7, page[0].ID)
}

func TestDiskDataStore_SharedFileAndReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shared.db")

	db, err := Open(path, 0)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())

	users, err := New[testEntity](db, "users")
	require.NoError(t, err)
	posts, err := New[testEntity](db, "posts")
	require.NoError(t, err)

	require.NoError(t, users.Put(ctx, 1, testEntity{Name: "user"}))
	require.NoError(t, posts.Put(ctx, 1, testEntity{Name: "post"}))
	require.NoError(t, db.Close())

	db, err = Open(path, 0)
	require.NoError(t, err)
	defer db.Close()

	users, err = New[testEntity](db, "users")
	require.NoError(t, err)
	got, err := users.GetOne(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "user", got.Name)

	items, err := users.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDiskDataStore_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := New[testEntity](openTestDB(t), "")
	assert.True(t, errors.IsValidationError(err))
}
