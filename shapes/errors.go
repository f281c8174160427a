// SPDX-License-Identifier: MIT
// Package: lvcat/shapes
//
// errors.go - sentinel errors for the shapes package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; they never panic at runtime.
//     Validation panics are confined to option constructors (WithX...).

package shapes

import "errors"

// ErrTooFewObjects indicates that a size parameter is smaller than the
// constructor's minimum (e.g., Path(1), Star(0)).
var ErrTooFewObjects = errors.New("shapes: parameter too small")

// ErrConstructFailed indicates a constructor could not be applied, e.g. a nil
// constructor was passed to Build.
var ErrConstructFailed = errors.New("shapes: construction failed")
