/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package disk

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	bolt "go.etcd.io/bbolt"

	"github.com/suparena/primer/errors"
	"github.com/suparena/primer/storagemodels"
)

const (
	// DefaultPath is the database file used when no path is configured.
	DefaultPath = "primer.db"

	// DefaultTimeout bounds the wait for the file lock.
	DefaultTimeout = time.Second

	indexSuffix = ".index"
)

// DB is a bbolt file shared by every DataStore opened on it.
type DB struct {
	path   string
	handle *bolt.DB
}

// Open opens (creating if needed) the bbolt file at path.
// An empty path or a directory-like path falls back to DefaultPath.
func Open(path string, timeout time.Duration) (*DB, error) {
	path = resolvePath(path)
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	handle, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt file %q: %w", path, err)
	}

	if info, statErr := os.Stat(path); statErr == nil {
		log.WithFields(log.Fields{
			"path": path,
			"size": humanize.Bytes(uint64(info.Size())),
		}).Debug("opened bolt file")
	}

	return &DB{path: path, handle: handle}, nil
}

// Path returns the resolved file path.
func (db *DB) Path() string {
	return db.path
}

// Close releases the file lock.
func (db *DB) Close() error {
	return db.handle.Close()
}

func resolvePath(candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" || strings.HasSuffix(trimmed, "/") || strings.HasSuffix(trimmed, "\\") {
		return DefaultPath
	}
	return filepath.Clean(trimmed)
}

// envelope is the stored form of an entity; the bucket key is the insertion
// sequence, so the id travels with the value.
type envelope[T any] struct {
	ID     int `json:"id"`
	Entity T   `json:"entity"`
}

// DataStore implements datastore.DataStore[T] on one bbolt bucket.
//
// Values live in bucket <name> keyed by an insertion sequence, which keeps
// cursor order equal to insertion order. Bucket <name>.index maps id to sequence.
type DataStore[T any] struct {
	db       *DB
	data     []byte
	index    []byte
	typeName string
}

// New creates the buckets for name if needed and returns a store over them.
func New[T any](db *DB, name string) (*DataStore[T], error) {
	if name == "" {
		return nil, errors.NewValidationError("name", "bucket name is required")
	}

	s := &DataStore[T]{
		db:       db,
		data:     []byte(name),
		index:    []byte(name + indexSuffix),
		typeName: name,
	}

	err := db.handle.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{s.data, s.index} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %q: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// WithTypeName sets the entity name used in not found errors
func (s *DataStore[T]) WithTypeName(name string) *DataStore[T] {
	s.typeName = name
	return s
}

// GetOne retrieves an entity by id.
func (s *DataStore[T]) GetOne(ctx context.Context, id int) (*T, error) {
	var env envelope[T]
	found := false

	err := s.db.handle.View(func(tx *bolt.Tx) error {
		seq := tx.Bucket(s.index).Get(itob(id))
		if seq == nil {
			return nil
		}
		raw := tx.Bucket(s.data).Get(seq)
		if raw == nil {
			return nil
		}
		found = true
		return json.Unmarshal(raw, &env)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %d: %w", s.typeName, id, err)
	}
	if !found {
		return nil, errors.NewNotFoundError(s.typeName, strconv.Itoa(id))
	}

	return &env.Entity, nil
}

// Put stores entity under id, reusing the id's sequence when it already exists.
func (s *DataStore[T]) Put(ctx context.Context, id int, entity T) error {
	raw, err := json.Marshal(envelope[T]{ID: id, Entity: entity})
	if err != nil {
		return fmt.Errorf("failed to marshal %s %d: %w", s.typeName, id, err)
	}

	err = s.db.handle.Update(func(tx *bolt.Tx) error {
		data := tx.Bucket(s.data)
		index := tx.Bucket(s.index)

		key := itob(id)
		var seqKey []byte
		if existing := index.Get(key); existing != nil {
			seqKey = append([]byte(nil), existing...)
		} else {
			seq, err := data.NextSequence()
			if err != nil {
				return err
			}
			seqKey = utob(seq)
			if err := index.Put(key, seqKey); err != nil {
				return err
			}
		}

		return data.Put(seqKey, raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s %d: %w", s.typeName, id, err)
	}

	return nil
}

// List returns entities in insertion order.
func (s *DataStore[T]) List(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.Item[T], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var items []storagemodels.Item[T]
	err := s.db.handle.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.data).ForEach(func(_, raw []byte) error {
			var env envelope[T]
			if err := json.Unmarshal(raw, &env); err != nil {
				return err
			}
			items = append(items, storagemodels.Item[T]{ID: env.ID, Entity: env.Entity})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.typeName, err)
	}

	return storagemodels.Page(items, params), nil
}

// Close is a no-op; the shared DB is closed by its owner.
func (s *DataStore[T]) Close() error {
	return nil
}

func itob(id int) []byte {
	return utob(uint64(id))
}

func utob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
