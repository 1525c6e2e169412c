//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"portscout reads the Linux /proc socket and process tables and is only supported on Linux.",
	)
	os.Exit(2)
}
