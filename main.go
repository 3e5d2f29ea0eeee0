package main

import (
	"errors"
	"fmt"
	"os"

	"gofind.dev/gofind/cmd"
	find "gofind.dev/gofind/internal/find"
)

func main() {
	// Recover from panics with a non-zero exit instead of a stack trace
	// on the diffed error stream.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "find: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := cmd.Execute(); err != nil {
		// Traversal diagnostics were already written in visit order;
		// anything else (parse errors, watch failures) is reported
		// here in find's prefix format.
		if !errors.Is(err, find.ErrTraversal) {
			fmt.Fprintf(os.Stderr, "find: %v\n", err)
		}
		os.Exit(1)
	}
}
