// SPDX-License-Identifier: MIT

package diagram

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidComposition is matched by every *InvalidCompositionError.
	ErrInvalidComposition = errors.New("diagram: invalid composition")

	// ErrUnsupportedOperation is matched by every *UnsupportedOperationError.
	ErrUnsupportedOperation = errors.New("diagram: unsupported operation")

	// ErrKindMismatch indicates a type-erased value narrowed to the wrong kind.
	ErrKindMismatch = errors.New("diagram: kind mismatch")
)

// InvalidCompositionError reports an attempt to compose morphisms of
// different kinds through the type-erased API.
type InvalidCompositionError struct {
	Left, Right Kind
}

func (e *InvalidCompositionError) Error() string {
	return fmt.Sprintf("diagram: cannot compose %s-kind morphism with %s-kind morphism", e.Left, e.Right)
}

// Unwrap returns ErrInvalidComposition.
func (e *InvalidCompositionError) Unwrap() error { return ErrInvalidComposition }

// UnsupportedOperationError reports an operation that has no meaning for a kind,
// such as the dual of an id-kind value.
type UnsupportedOperationError struct {
	Op   string
	Kind Kind
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("diagram: %s is undefined for %s-kind values", e.Op, e.Kind)
}

// Unwrap returns ErrUnsupportedOperation.
func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOperation }
