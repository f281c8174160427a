// SPDX-License-Identifier: MIT

package category

import "errors"

var (
	// ErrNilCategory is returned when a nil Category is passed to an algorithm.
	ErrNilCategory = errors.New("category: category is nil")

	// ErrEmptySequence is returned by Sequence when no morphisms are given;
	// the identity cannot be chosen without an object.
	ErrEmptySequence = errors.New("category: empty sequence")

	// ErrIdentityLaw marks a violation of id;f = f or f;id = f.
	ErrIdentityLaw = errors.New("category: identity law violated")

	// ErrAssociativityLaw marks a violation of (f;g);h = f;(g;h).
	ErrAssociativityLaw = errors.New("category: associativity law violated")
)
