/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is the initial content of the user and post stores.
type Seed struct {
	Users []SeedUser `json:"users" yaml:"users"`
	Posts []Post     `json:"posts" yaml:"posts"`
}

// DefaultSeed returns three users and two posts.
func DefaultSeed() Seed {
	return Seed{
		Users: []SeedUser{
			{ID: 1, User: User{Name: "Alice", Age: 25, Email: "alice@example.com"}},
			{ID: 2, User: User{Name: "Bob", Age: 30, Email: "bob@example.com"}},
			{ID: 3, User: User{Name: "Charlie", Age: 35, Email: "charlie@example.com"}},
		},
		Posts: []Post{
			{ID: 1, Title: "First Post", Content: "Hello World"},
			{ID: 2, Title: "Second Post", Content: "Python is great"},
		},
	}
}

// LoadSeed reads a YAML seed file.
func LoadSeed(path string) (Seed, error) {
	var seed Seed

	data, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("failed to read seed file: %w", err)
	}
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return seed, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return seed, nil
}
