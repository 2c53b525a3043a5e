// Package main is grindlogctl, the operator CLI: schema migration, role
// management, password hashing and aggregate stats.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
