package output

import (
	"fmt"
	"io"
)

// PrintShort writes a one-line account of a single result.
func PrintShort(w io.Writer, r Result, colorEnabled bool) {
	if r.Skipped {
		fmt.Fprintf(w, "%s → %s\n", r.Input, paint(mutedStyle, "skipped", colorEnabled))
		return
	}
	if r.Err != nil {
		fmt.Fprintf(w, "%s → %s\n", r.Input, paint(failStyle, r.Err.Error(), colorEnabled))
		return
	}
	fmt.Fprintf(w, "%s → %s (%s)\n", r.Input, paint(okStyle, r.Output, colorEnabled),
		paint(mutedStyle, fmt.Sprintf("%d processes", r.Nodes), colorEnabled))
}
