/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create an entity that already exists
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrFileNotFound is returned when a source does not resolve to a readable file
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidNumber is returned when a line of a numeric source fails to parse
	ErrInvalidNumber = errors.New("invalid number in file")

	// ErrNoIndexMap is returned when no index map is found for a type
	ErrNoIndexMap = errors.New("no index map found for type")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// FileError reports a source that could not be opened or read.
// Err holds the underlying cause, if any.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrFileNotFound, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrFileNotFound, e.Path)
}

func (e *FileError) Is(target error) bool {
	return target == ErrFileNotFound
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// InvalidNumberError reports the first line of a source that is not a number.
// Line is 1-based.
type InvalidNumberError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%s: %s:%d: %q", ErrInvalidNumber, e.Path, e.Line, e.Text)
}

func (e *InvalidNumberError) Is(target error) bool {
	return target == ErrInvalidNumber
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFileError creates a new FileError
func NewFileError(path string, cause error) error {
	return &FileError{Path: path, Err: cause}
}

// NewInvalidNumberError creates a new InvalidNumberError
func NewInvalidNumberError(path string, line int, text string, cause error) error {
	return &InvalidNumberError{Path: path, Line: line, Text: text, Err: cause}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsFileNotFound checks if an error is a file not found error
func IsFileNotFound(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}

// IsInvalidNumber checks if an error is an invalid number error
func IsInvalidNumber(err error) bool {
	return errors.Is(err, ErrInvalidNumber)
}
