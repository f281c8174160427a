// SPDX-License-Identifier: MIT

// Package scenario holds the built-in law-check fixtures run by `lvcat laws`:
// the standard shape categories and small id/op/co diagram categories into
// the free category A -a-> B -b-> E.
package scenario
