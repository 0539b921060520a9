// Package sqlite provides a SQLite implementation of the DataStore interface
// using github.com/mattn/go-sqlite3, which requires cgo.
//
// All kinds share one table; seq preserves insertion order:
//
//	db, err := sqlite.Open(ctx, "primer.sqlite")
//	users, err := sqlite.New[api.User](db, "users")
package sqlite
