/*
Package primer collects three small, independent demonstrations behind a
shared storage layer and one command line tool.

  - record: an insertion-ordered string record (the dictionary demo)
  - numsum: line-by-line numeric summation of a file or S3 object
  - api: a seedable in-memory user and post "API"

The root package keeps named datastores per entity type:

	// Create a storage manager
	mts := primer.NewMultiTypeStorage()

	// Register a typed datastore
	primer.RegisterDataStore[api.User](mts, api.UsersKey, memory.New[api.User]())

	// Retrieve and use the datastore
	users, _ := primer.GetDataStore[api.User](mts, api.UsersKey)
	err := users.Put(ctx, 1, api.User{Name: "Alice", Age: 25})

Backends live under datastore/: memory (default), disk (bbolt), sqlite and ddb
(DynamoDB). The primer command in cmd/primer drives all three demos.
*/
package primer
