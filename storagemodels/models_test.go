/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suparena/primer/errors"
)

func TestQueryParamsWindow(t *testing.T) {
	tests := []struct {
		name       string
		params     *QueryParams
		n          int
		start, end int
	}{
		{name: "nil params", params: nil, n: 3, start: 0, end: 3},
		{name: "zero value", params: &QueryParams{}, n: 3, start: 0, end: 3},
		{name: "limit", params: &QueryParams{Limit: 2}, n: 3, start: 0, end: 2},
		{name: "offset", params: &QueryParams{Offset: 1}, n: 3, start: 1, end: 3},
		{name: "offset and limit", params: &QueryParams{Offset: 1, Limit: 1}, n: 3, start: 1, end: 2},
		{name: "offset past end", params: &QueryParams{Offset: 5, Limit: 1}, n: 3, start: 3, end: 3},
		{name: "limit past end", params: &QueryParams{Offset: 2, Limit: 10}, n: 3, start: 2, end: 3},
		{name: "max limit with offset", params: &QueryParams{Offset: 1, Limit: math.MaxInt}, n: 3, start: 1, end: 3},
		{name: "max offset and limit", params: &QueryParams{Offset: math.MaxInt, Limit: math.MaxInt}, n: 3, start: 3, end: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Window(tt.n)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestQueryParamsValidate(t *testing.T) {
	var nilParams *QueryParams
	assert.NoError(t, nilParams.Validate())
	assert.NoError(t, (&QueryParams{Offset: 1, Limit: 1}).Validate())
	assert.True(t, errors.IsValidationError((&QueryParams{Offset: -1}).Validate()))
	assert.True(t, errors.IsValidationError((&QueryParams{Limit: -1}).Validate()))
}

func TestPageAndEntities(t *testing.T) {
	items := []Item[string]{{ID: 1, Entity: "a"}, {ID: 2, Entity: "b"}, {ID: 3, Entity: "c"}}

	page := Page(items, &QueryParams{Offset: 1, Limit: 1})
	assert.Equal(t, []Item[string]{{ID: 2, Entity: "b"}}, page)

	tail := Page(items, &QueryParams{Offset: 1, Limit: math.MaxInt})
	assert.Equal(t, []Item[string]{{ID: 2, Entity: "b"}, {ID: 3, Entity: "c"}}, tail)
	assert.Equal(t, []string{"a", "b", "c"}, Entities(items))
	assert.Empty(t, Entities[string](nil))
}
