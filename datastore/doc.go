/*
Package datastore defines the core interface for primer's data persistence layer.

The main interface is DataStore[T], which provides generic operations for any entity type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, id int) (*T, error)
	    Put(ctx context.Context, id int, entity T) error
	    List(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.Item[T], error)
	    Close() error
	}

Every implementation follows the same rules:
  - GetOne returns an error satisfying errors.IsNotFound when id is absent.
  - Put inserts a new id at the end of the insertion order, or replaces the
    entity of an existing id in place.
  - List returns items in insertion order.

Implementations:
  - memory: in-memory store, the default
  - disk: bbolt file
  - sqlite: SQLite database via database/sql
  - ddb: DynamoDB single-table design
*/
package datastore
