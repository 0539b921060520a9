/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/suparena/primer/errors"
)

// Item pairs a stored entity with its integer id.
type Item[T any] struct {
	// ID is the key the entity was stored under.
	ID int
	// Entity is the stored value.
	Entity T
}

// QueryParams defines paging for a List operation.
// A nil *QueryParams lists everything.
type QueryParams struct {
	// Offset skips this many items from the start of the insertion order.
	Offset int
	// Limit caps the number of items returned. Zero means no limit.
	Limit int
}

// Validate reports whether the params are usable.
func (p *QueryParams) Validate() error {
	if p == nil {
		return nil
	}
	if p.Offset < 0 {
		return errors.NewValidationError("offset", "must not be negative")
	}
	if p.Limit < 0 {
		return errors.NewValidationError("limit", "must not be negative")
	}
	return nil
}

// Window returns the [start, end) bounds of a page over n ordered items.
func (p *QueryParams) Window(n int) (start, end int) {
	if p == nil {
		return 0, n
	}
	start = min(p.Offset, n)
	end = n
	if p.Limit > 0 && p.Limit < end-start {
		end = start + p.Limit
	}
	return start, end
}

// Page applies the params to an ordered slice.
func Page[T any](items []Item[T], p *QueryParams) []Item[T] {
	start, end := p.Window(len(items))
	return items[start:end]
}

// Entities strips ids from a slice of items.
func Entities[T any](items []Item[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, it.Entity)
	}
	return out
}
