//go:build windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"ps2gv needs a Unix ps command and is only supported on Linux, macOS, the BSDs and illumos.\n\nIf you are seeing this message, you are attempting to build or run ps2gv on an unsupported platform.",
	)
	os.Exit(1)
}
