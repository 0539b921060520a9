/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "USER#{ID}")
  - Automatic ID and EntityType attributes on every item
  - Paginated listing of one entity type in id order

Key Features:

Macro Expansion:
Sort keys use the {ID} macro, replaced with the zero-padded entity id:

	registry.RegisterIndexMap[User](map[string]string{
	    "PK": "USER",        // One partition per type
	    "SK": "USER#{ID}",   // Becomes "USER#0000000004"
	})

Clients:
Any value satisfying Client works, which lets tests run against an in-memory fake:

	cfg, _ := config.LoadDefaultConfig(ctx)
	users, err := ddb.NewDynamodbDataStore[User](ddb.NewClient(cfg), "primer")

For usage examples, see the tests and the integration test (build tag "integration").
*/
package ddb
