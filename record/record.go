/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value string
}

// Record is an insertion-ordered mapping of unique string keys to string values.
// The zero value is an empty record ready to use.
type Record struct {
	keys   []string
	values map[string]string
}

// New builds a record from fields in order. A repeated key keeps its first
// position and its last value.
func New(fields ...Field) *Record {
	r := &Record{values: make(map[string]string, len(fields))}
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// Person returns the demo record: name, age and city.
func Person() *Record {
	return New(
		Field{Key: "name", Value: "Alice"},
		Field{Key: "age", Value: "30"},
		Field{Key: "city", Value: "Madrid"},
	)
}

// Get returns the value for key and whether it is present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns a copy of the keys in insertion order.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// Set adds key at the end, or replaces the value of an existing key in place.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// All yields every (key, value) pair in insertion order.
func (r *Record) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Fields returns the pairs in insertion order.
func (r *Record) Fields() []Field {
	out := make([]Field, 0, len(r.keys))
	for k, v := range r.All() {
		out = append(out, Field{Key: k, Value: v})
	}
	return out
}

// MarshalJSON encodes the record as a JSON object in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range r.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a YAML mapping in insertion order.
func (r *Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range r.All() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
		)
	}
	return node, nil
}
