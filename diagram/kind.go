// SPDX-License-Identifier: MIT

package diagram

import "fmt"

// Kind is the runtime name of a variance.
type Kind uint8

const (
	// KindID is covariant: a shape functor J → J′ and ϕ: D ⇒ F;D′.
	KindID Kind = iota
	// KindOp is contravariant: a shape functor J′ → J and ϕ: F;D ⇒ D′.
	KindOp
	// KindCo is covariant on shapes, contravariant on components: F: J → J′, ϕ: F;D′ ⇒ D.
	KindCo
)

// String returns "id", "op" or "co".
func (k Kind) String() string {
	switch k {
	case KindID:
		return "id"
	case KindOp:
		return "op"
	case KindCo:
		return "co"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ID, Op and Co are the compile-time variance markers. They carry no data;
// they only select behaviour through the type parameter K.
type (
	ID struct{}
	Op struct{}
	Co struct{}
)

// Variance is the closed set of variance markers.
type Variance interface {
	ID | Op | Co
}

// KindOf returns the runtime Kind of the marker K.
func KindOf[K Variance]() Kind {
	var k K
	switch any(k).(type) {
	case Op:
		return KindOp
	case Co:
		return KindCo
	default:
		return KindID
	}
}
