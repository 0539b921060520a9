/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/apex/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/suparena/primer/errors"
	"github.com/suparena/primer/storagemodels"
)

// DefaultFilename is used when no database path is configured.
const DefaultFilename = "primer.sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS entities (
	seq  INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT    NOT NULL,
	id   INTEGER NOT NULL,
	body TEXT    NOT NULL,
	UNIQUE (kind, id)
)`

// Open opens the SQLite database at filename and ensures the schema exists.
func Open(ctx context.Context, filename string) (*sql.DB, error) {
	if filename == "" {
		filename = DefaultFilename
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema in %q: %w", filename, err)
	}

	log.WithField("filename", filename).Debug("opened sqlite database")
	return db, nil
}

// DataStore implements datastore.DataStore[T] on the entities table,
// scoped to one kind. Entities are stored as JSON.
type DataStore[T any] struct {
	db       *sql.DB
	kind     string
	typeName string
}

// New returns a store for kind on db.
func New[T any](db *sql.DB, kind string) (*DataStore[T], error) {
	if kind == "" {
		return nil, errors.NewValidationError("kind", "kind is required")
	}

	return &DataStore[T]{
		db:       db,
		kind:     kind,
		typeName: kind,
	}, nil
}

// WithTypeName sets the entity name used in not found errors
func (s *DataStore[T]) WithTypeName(name string) *DataStore[T] {
	s.typeName = name
	return s
}

// GetOne retrieves an entity by id.
func (s *DataStore[T]) GetOne(ctx context.Context, id int) (*T, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM entities WHERE kind = ? AND id = ?`,
		s.kind, id,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(s.typeName, strconv.Itoa(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %d: %w", s.typeName, id, err)
	}

	result := new(T)
	if err := json.Unmarshal([]byte(body), result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s %d: %w", s.typeName, id, err)
	}
	return result, nil
}

// Put upserts entity; an existing row keeps its seq and so its position.
func (s *DataStore[T]) Put(ctx context.Context, id int, entity T) error {
	body, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal %s %d: %w", s.typeName, id, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO entities (kind, id, body) VALUES (?, ?, ?)
		 ON CONFLICT (kind, id) DO UPDATE SET body = excluded.body`,
		s.kind, id, string(body),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s %d: %w", s.typeName, id, err)
	}
	return nil
}

// List returns entities ordered by insertion.
func (s *DataStore[T]) List(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.Item[T], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	limit, offset := -1, 0
	if params != nil {
		offset = params.Offset
		if params.Limit > 0 {
			limit = params.Limit
		}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body FROM entities WHERE kind = ? ORDER BY seq LIMIT ? OFFSET ?`,
		s.kind, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.typeName, err)
	}
	defer rows.Close()

	var items []storagemodels.Item[T]
	for rows.Next() {
		var (
			id   int
			body string
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}

		var entity T
		if err := json.Unmarshal([]byte(body), &entity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s %d: %w", s.typeName, id, err)
		}
		items = append(items, storagemodels.Item[T]{ID: id, Entity: entity})
	}

	return items, rows.Err()
}

// Close is a no-op; the shared *sql.DB is closed by its owner.
func (s *DataStore[T]) Close() error {
	return nil
}
