/*
Package errors provides semantic error types for primer.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound      = errors.New("entity not found")
	    ErrAlreadyExists = errors.New("entity already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrFileNotFound  = errors.New("file not found")
	    ErrInvalidNumber = errors.New("invalid number in file")
	    ErrNoIndexMap    = errors.New("no index map found for type")
	)

Usage:

	// Check error type
	user, err := svc.GetUser(ctx, 999)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return api.ErrorPayloadFor(err), nil
	    }
	    return nil, err
	}

	// Summation failures carry their own kind
	total, err := summer.Sum(ctx, "numbers.txt")
	if errors.IsInvalidNumber(err) {
	    var inv *errors.InvalidNumberError
	    stderrors.As(err, &inv) // inv.Line is the offending line
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
