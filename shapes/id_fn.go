// SPDX-License-Identifier: MIT

package shapes

import (
	"fmt"
	"strconv"
)

// IDFn generates an identifier from its zero-based index.
// It must be pure and deterministic.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// DefaultEdgeFn numbers generators from one: 0→"e1", 1→"e2".
func DefaultEdgeFn(idx int) string {
	return "e" + strconv.Itoa(idx+1)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}
