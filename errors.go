// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"errors"
	"fmt"
)

// Error classes shared by the engine and the translators. Errors returned by
// this module wrap one of them, so callers should test with errors.Is.
var (
	// ErrUnsupported is returned for inputs using features outside the scope
	// of the engine, such as latches or binary AIG files.
	ErrUnsupported = errors.New("unsupported feature")

	// ErrMalformed is returned when an input (header, literal, symbol or
	// expression) cannot be parsed or does not define what it should.
	ErrMalformed = errors.New("malformed input")

	// ErrInvariant signals a programming fault, typically a restriction over
	// a variable that the variable sweep already skipped.
	ErrInvariant = errors.New("invariant violation")

	// ErrUnknownVariable is returned when a variable name was never declared.
	ErrUnknownVariable = errors.New("unknown variable")
)

func invariantf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, a...))
}
