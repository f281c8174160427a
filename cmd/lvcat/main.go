// SPDX-License-Identifier: MIT

// Command lvcat checks the category laws over built-in finite categories and
// diagram categories.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
