/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package numsum

import (
	"math"
	"strconv"
	"strings"

	"github.com/suparena/primer/errors"
)

// Failure names why a sum could not be produced.
type Failure int

const (
	FailureNone Failure = iota
	FailureFileNotFound
	FailureInvalidNumber
)

func (f Failure) String() string {
	switch f {
	case FailureFileNotFound:
		return "File not found"
	case FailureInvalidNumber:
		return "Invalid number in file"
	default:
		return ""
	}
}

// FailureOf classifies err. Errors that are neither kind map to FailureNone.
func FailureOf(err error) Failure {
	switch {
	case errors.IsFileNotFound(err):
		return FailureFileNotFound
	case errors.IsInvalidNumber(err):
		return FailureInvalidNumber
	default:
		return FailureNone
	}
}

// Result is either a total or a failure, never both.
type Result struct {
	Total   float64
	Failure Failure
	Err     error
}

// OK reports whether Total holds a sum.
func (r Result) OK() bool {
	return r.Err == nil
}

// String renders the total, or the failure text.
func (r Result) String() string {
	switch {
	case r.Failure != FailureNone:
		return r.Failure.String()
	case r.Err != nil:
		return r.Err.Error()
	default:
		return FormatTotal(r.Total)
	}
}

// FormatTotal renders f in shortest round-trip form, always with a decimal
// point: 6 is "6.0", 1e16 is "1e+16", 0.1+0.2 is "0.30000000000000004".
func FormatTotal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
