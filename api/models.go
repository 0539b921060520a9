/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/primer/registry"
)

// User is a stored user record. Its id is the datastore key.
type User struct {
	Name  string       `json:"name" yaml:"name" dynamodbav:"name"`
	Age   int          `json:"age" yaml:"age" dynamodbav:"age"`
	Email strfmt.Email `json:"email" yaml:"email" dynamodbav:"email"`
}

// Post is a stored post. ID mirrors the datastore key.
type Post struct {
	ID      int    `json:"id" yaml:"id" dynamodbav:"id"`
	Title   string `json:"title" yaml:"title" dynamodbav:"title"`
	Content string `json:"content" yaml:"content" dynamodbav:"content"`
}

// SeedUser is a user together with the id it is seeded under.
type SeedUser struct {
	ID   int `json:"id" yaml:"id"`
	User `yaml:",inline"`
}

// AddUserResult is returned by AddUser.
type AddUserResult struct {
	ID      int    `json:"id" yaml:"id"`
	Message string `json:"message" yaml:"message"`
}

// ErrorPayload is the error shape returned to callers.
type ErrorPayload struct {
	Error string `json:"error" yaml:"error"`
}

func init() {
	registry.RegisterIndexMap[User](map[string]string{
		"PK":         "USER",
		"SK":         "USER#{ID}",
		"EntityType": "User",
	})
	registry.RegisterIndexMap[Post](map[string]string{
		"PK":         "POST",
		"SK":         "POST#{ID}",
		"EntityType": "Post",
	})
}
