/*
Package registry associates Go types with their DynamoDB key layout.

Index Map Registry:
Associates Go types with DynamoDB key patterns. The {ID} macro is replaced by
the entity's zero-padded integer id, so sort keys order numerically:

	registry.RegisterIndexMap[User](map[string]string{
	    "PK":         "USER",
	    "SK":         "USER#{ID}",
	    "EntityType": "User",
	})

The partition key must not contain macros; every entity of a type shares one
partition, which is what lets a single Query list them in id order.

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
