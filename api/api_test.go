/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/primer"
	"github.com/suparena/primer/datastore/memory"
	"github.com/suparena/primer/errors"
	"github.com/suparena/primer/storagemodels"
)

func newService(t *testing.T, seed Seed) *Service {
	t.Helper()
	svc, err := New(context.Background(), memory.New[User]().WithTypeName("User"), memory.New[Post](), seed)
	require.NoError(t, err)
	return svc
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, DefaultSeed())

	t.Run("Found", func(t *testing.T) {
		u, err := svc.GetUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, User{Name: "Alice", Age: 25, Email: "alice@example.com"}, *u)

		b, err := json.Marshal(u)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Alice","age":25,"email":"alice@example.com"}`, string(b))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.GetUser(ctx, 999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))

		b, err := json.Marshal(ErrorPayloadFor(err))
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"User not found"}`, string(b))
	})
}

func TestAddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("NextIDAfterSeed", func(t *testing.T) {
		svc := newService(t, DefaultSeed())

		res, err := svc.AddUser(ctx, "David", 28, "david@example.com")
		require.NoError(t, err)

		b, err := json.Marshal(res)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":4,"message":"User added"}`, string(b))

		users, err := svc.GetAllUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 4)
		assert.Equal(t, "David", users[3].Name)
		assert.Equal(t, 28, users[3].Age)
	})

	t.Run("EmptyStoreStartsAtOne", func(t *testing.T) {
		svc := newService(t, Seed{})

		res, err := svc.AddUser(ctx, "Eve", 40, "eve@example.com")
		require.NoError(t, err)
		assert.Equal(t, 1, res.ID)
	})

	t.Run("MaxNotCount", func(t *testing.T) {
		svc := newService(t, Seed{Users: []SeedUser{
			{ID: 10, User: User{Name: "Ten"}},
			{ID: 2, User: User{Name: "Two"}},
		}})

		res, err := svc.AddUser(ctx, "Next", 1, "")
		require.NoError(t, err)
		assert.Equal(t, 11, res.ID)
	})

	t.Run("NoValidation", func(t *testing.T) {
		svc := newService(t, DefaultSeed())

		_, err := svc.AddUser(ctx, "", -5, "alice@example.com")
		assert.NoError(t, err)
	})

	t.Run("PutError", func(t *testing.T) {
		boom := stderrors.New("boom")
		svc, err := New(ctx, memory.New[User](), memory.New[Post](), Seed{})
		require.NoError(t, err)
		svc.users = memory.New[User]().WithPutError(boom)

		_, err = svc.AddUser(ctx, "x", 1, "x@example.com")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Concurrent", func(t *testing.T) {
		svc := newService(t, DefaultSeed())

		done := make(chan int, 20)
		for i := 0; i < 20; i++ {
			go func() {
				res, err := svc.AddUser(ctx, "u", 1, "u@example.com")
				if err != nil {
					done <- 0
					return
				}
				done <- res.ID
			}()
		}

		seen := make(map[int]bool)
		for i := 0; i < 20; i++ {
			id := <-done
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}

		users, err := svc.GetAllUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 23)
	})
}

func TestGetPosts(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, DefaultSeed())

	first, err := svc.GetPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed().Posts, first)

	// Mutating a returned slice does not leak into the store.
	first[0].Title = "changed"

	second, err := svc.GetPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed().Posts, second)
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, DefaultSeed())

	page, err := svc.ListUsers(ctx, &storagemodels.QueryParams{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, 2, page[0].ID)
	assert.Equal(t, "Bob", page[0].Entity.Name)

	_, err = svc.ListUsers(ctx, &storagemodels.QueryParams{Limit: -1})
	assert.True(t, errors.IsValidationError(err))
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	users := memory.New[User]()
	posts := memory.New[Post]()

	require.NoError(t, users.Put(ctx, 7, User{Name: "Existing"}))

	svc, err := New(ctx, users, posts, DefaultSeed())
	require.NoError(t, err)

	all, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []User{{Name: "Existing"}}, all)

	gotPosts, err := svc.GetPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, gotPosts, 2)
}

func TestNewSeedError(t *testing.T) {
	boom := stderrors.New("list failed")
	_, err := New(context.Background(), memory.New[User]().WithListError(boom), memory.New[Post](), DefaultSeed())
	assert.ErrorIs(t, err, boom)
}

func TestNewFromStorage(t *testing.T) {
	ctx := context.Background()
	mts := primer.NewMultiTypeStorage()

	_, err := NewFromStorage(ctx, mts, DefaultSeed())
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, primer.RegisterDataStore[User](mts, UsersKey, memory.New[User]()))
	require.NoError(t, primer.RegisterDataStore[Post](mts, PostsKey, memory.New[Post]()))

	svc, err := NewFromStorage(ctx, mts, DefaultSeed())
	require.NoError(t, err)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - id: 5
    name: Zed
    age: 50
    email: zed@example.com
posts:
  - id: 1
    title: Only
    content: Post
`), 0o644))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, Seed{
		Users: []SeedUser{{ID: 5, User: User{Name: "Zed", Age: 50, Email: "zed@example.com"}}},
		Posts: []Post{{ID: 1, Title: "Only", Content: "Post"}},
	}, seed)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("users: {"), 0o644))
	_, err = LoadSeed(bad)
	assert.Error(t, err)
}
