/*
Package record provides Record, a flat string-to-string mapping that remembers
insertion order.

	r := record.New(
	    record.Field{Key: "name", Value: "Alice"},
	    record.Field{Key: "age", Value: "30"},
	)
	r.Set("email", "alice@example.com")

	for k, v := range r.All() {
	    fmt.Printf("  %s: %s\n", k, v)
	}

Setting an existing key replaces its value without moving it. Records marshal
to JSON and YAML objects with keys in insertion order.
*/
package record
