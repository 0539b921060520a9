/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/primer/storagemodels"
)

// DataStore keeps entities of type T under integer ids.
type DataStore[T any] interface {
	GetOne(ctx context.Context, id int) (*T, error)

	Put(ctx context.Context, id int, entity T) error

	List(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.Item[T], error)

	Close() error
}

// MaxID returns the largest id held by ds, and false when ds is empty.
func MaxID[T any](ctx context.Context, ds DataStore[T]) (int, bool, error) {
	items, err := ds.List(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	if len(items) == 0 {
		return 0, false, nil
	}

	maxID := items[0].ID
	for _, it := range items[1:] {
		maxID = max(maxID, it.ID)
	}
	return maxID, true, nil
}
