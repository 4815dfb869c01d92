package output

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pranshuparmar/ps2gv/internal/graph"
	"github.com/pranshuparmar/ps2gv/pkg/model"
)

// Result records what happened to one input of a run.
type Result struct {
	Input  string
	Output string
	Nodes  int
	Err    error
	// Skipped is set when the user declined to render the graph.
	Skipped bool
}

// RunSummary writes one row per input followed by a totals line.
func RunSummary(w io.Writer, results []Result, colorEnabled bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tOUTPUT\tNODES\tSTATUS")

	failed, skipped := 0, 0
	for _, r := range results {
		status := paint(okStyle, "ok", colorEnabled)
		output := r.Output
		nodes := strconv.Itoa(r.Nodes)
		switch {
		case r.Skipped:
			skipped++
			status = paint(mutedStyle, "skipped", colorEnabled)
			output = "-"
		case r.Err != nil:
			failed++
			status = paint(failStyle, "failed", colorEnabled) + ": " + r.Err.Error()
			if output == "" {
				output = "-"
				nodes = "-"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Input, output, nodes, status)
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d rendered", len(results)-failed-skipped)
	if skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", skipped)
	}
	if failed > 0 {
		fmt.Fprintf(w, ", %s", paint(failStyle, fmt.Sprintf("%d failed", failed), colorEnabled))
	}
	fmt.Fprintln(w)
}

// PrintRecordTable writes parsed records as an aligned table.
func PrintRecordTable(w io.Writer, records []model.ProcessRecord, colorEnabled bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tPPID\tZONE\tCPU%\tRSS\tCOMMAND\tUNIT")
	for _, r := range records {
		unit := r.Unit
		if r.HasUnit() {
			unit = paint(unitStyle, unit, colorEnabled)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.PID, r.PPID, r.Zone, r.PCPU, r.RSS, graph.BaseName(r.Command), unit)
	}
	tw.Flush()
}
