/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPerson(t *testing.T) {
	r := Person()

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"name", "age", "city"}, r.Keys())

	name, ok := r.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Alice", name)

	age, _ := r.Get("age")
	assert.Equal(t, "30", age)
}

func TestSet(t *testing.T) {
	t.Run("AddsNewKeyAtEnd", func(t *testing.T) {
		r := Person()
		r.Set("email", "alice@example.com")

		assert.Equal(t, 4, r.Len())
		assert.True(t, r.Has("email"))
		assert.Equal(t, []string{"name", "age", "city", "email"}, r.Keys())
	})

	t.Run("ReplacesInPlace", func(t *testing.T) {
		r := Person()
		r.Set("name", "Bob")

		assert.Equal(t, 3, r.Len())
		assert.Equal(t, []string{"name", "age", "city"}, r.Keys())
		v, _ := r.Get("name")
		assert.Equal(t, "Bob", v)
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var r Record
		r.Set("k", "v")
		assert.Equal(t, 1, r.Len())
	})
}

func TestNewDuplicateKeys(t *testing.T) {
	r := New(
		Field{Key: "a", Value: "1"},
		Field{Key: "b", Value: "2"},
		Field{Key: "a", Value: "3"},
	)

	assert.Equal(t, []Field{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}, r.Fields())
}

func TestAll(t *testing.T) {
	r := Person()
	r.Set("email", "alice@example.com")

	seen := make(map[string]int)
	var order []string
	for k := range r.All() {
		seen[k]++
		order = append(order, k)
	}

	assert.Equal(t, r.Keys(), order)
	for k, n := range seen {
		assert.Equalf(t, 1, n, "key %q yielded %d times", k, n)
	}

	// Early break stops iteration.
	count := 0
	for range r.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestKeysIsACopy(t *testing.T) {
	r := Person()
	keys := r.Keys()
	keys[0] = "changed"

	assert.True(t, r.Has("name"))
	assert.False(t, r.Has("changed"))
}

func TestMarshalJSON(t *testing.T) {
	r := Person()
	r.Set("email", "alice@example.com")

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Alice","age":"30","city":"Madrid","email":"alice@example.com"}`, string(b))

	empty, err := json.Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestMarshalYAML(t *testing.T) {
	b, err := yaml.Marshal(Person())
	require.NoError(t, err)
	assert.Equal(t, "name: Alice\nage: \"30\"\ncity: Madrid\n", string(b))
}
