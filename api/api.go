/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/apex/log"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/primer"
	"github.com/suparena/primer/datastore"
	"github.com/suparena/primer/errors"
	"github.com/suparena/primer/storagemodels"
)

const (
	// UsersKey names the user datastore in a MultiTypeStorage.
	UsersKey = "users"
	// PostsKey names the post datastore in a MultiTypeStorage.
	PostsKey = "posts"

	userAddedMessage = "User added"
	userNotFound     = "User not found"
)

// Service answers user and post requests.
type Service struct {
	// mu serializes AddUser so id allocation and insert are one step.
	mu    sync.Mutex
	users datastore.DataStore[User]
	posts datastore.DataStore[Post]
}

// New creates a Service over the given stores, writing seed into each store
// that is empty.
func New(ctx context.Context, users datastore.DataStore[User], posts datastore.DataStore[Post], seed Seed) (*Service, error) {
	if err := seedStore(ctx, users, seed.Users, func(u SeedUser) (int, User) { return u.ID, u.User }); err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	if err := seedStore(ctx, posts, seed.Posts, func(p Post) (int, Post) { return p.ID, p }); err != nil {
		return nil, fmt.Errorf("failed to seed posts: %w", err)
	}

	return &Service{users: users, posts: posts}, nil
}

// NewFromStorage creates a Service over the stores registered under UsersKey
// and PostsKey.
func NewFromStorage(ctx context.Context, mts *primer.MultiTypeStorage, seed Seed) (*Service, error) {
	users, err := primer.GetDataStore[User](mts, UsersKey)
	if err != nil {
		return nil, err
	}
	posts, err := primer.GetDataStore[Post](mts, PostsKey)
	if err != nil {
		return nil, err
	}
	return New(ctx, users, posts, seed)
}

func seedStore[T, S any](ctx context.Context, ds datastore.DataStore[T], seed []S, split func(S) (int, T)) error {
	existing, err := ds.List(ctx, &storagemodels.QueryParams{Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Debug("store already populated, skipping seed")
		return nil
	}

	for _, s := range seed {
		id, entity := split(s)
		if err := ds.Put(ctx, id, entity); err != nil {
			return err
		}
	}
	log.WithField("count", len(seed)).Debug("seeded store")
	return nil
}

// GetUser returns the user stored under id. A missing user is an error
// satisfying errors.IsNotFound.
func (s *Service) GetUser(ctx context.Context, id int) (*User, error) {
	return s.users.GetOne(ctx, id)
}

// GetAllUsers returns every user in insertion order.
func (s *Service) GetAllUsers(ctx context.Context) ([]User, error) {
	items, err := s.users.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return storagemodels.Entities(items), nil
}

// ListUsers returns one page of users together with their ids.
func (s *Service) ListUsers(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.Item[User], error) {
	return s.users.List(ctx, params)
}

// GetPosts returns the posts. Each call returns a fresh slice.
func (s *Service) GetPosts(ctx context.Context) ([]Post, error) {
	items, err := s.posts.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return storagemodels.Entities(items), nil
}

// AddUser stores a new user under the next id: one more than the largest id
// in the store, or 1 when the store is empty. Inputs are not validated.
func (s *Service) AddUser(ctx context.Context, name string, age int, email string) (*AddUserResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID, ok, err := datastore.MaxID(ctx, s.users)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate user id: %w", err)
	}
	id := 1
	if ok {
		id = maxID + 1
	}

	user := User{Name: name, Age: age, Email: strfmt.Email(email)}
	if err := s.users.Put(ctx, id, user); err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	log.WithFields(log.Fields{"id": id, "name": name}).Debug("user added")
	return &AddUserResult{ID: id, Message: userAddedMessage}, nil
}

// ErrorPayloadFor renders err as an ErrorPayload.
func ErrorPayloadFor(err error) ErrorPayload {
	if errors.IsNotFound(err) {
		return ErrorPayload{Error: userNotFound}
	}
	return ErrorPayload{Error: err.Error()}
}
