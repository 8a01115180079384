// SPDX-License-Identifier: MIT

// Command wordladder serves the daily word-ladder puzzle and offers offline
// tools for solving, selecting and analyzing ladders.
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
