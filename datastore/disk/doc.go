// Package disk provides a bbolt implementation of the DataStore interface.
//
// One DB file holds any number of typed stores, one bucket pair per store:
//
//	db, err := disk.Open("primer.db", time.Second)
//	users, err := disk.New[api.User](db, "users")
//	posts, err := disk.New[api.Post](db, "posts")
//	defer db.Close()
//
// Entities are stored as JSON.
package disk
