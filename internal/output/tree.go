package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pranshuparmar/ps2gv/internal/graph"
	"github.com/pranshuparmar/ps2gv/pkg/model"
)

// PrintTree writes the process forest as an indented text tree. Roots are
// processes whose parent is not in the table. Each pid is printed once;
// repeated pids and parent cycles are cut off.
func PrintTree(w io.Writer, records []model.ProcessRecord, colorEnabled bool) {
	byPID := make(map[string]model.ProcessRecord, len(records))
	children := make(map[string][]string)
	var order []string
	for _, r := range records {
		if _, dup := byPID[r.PID]; !dup {
			order = append(order, r.PID)
		}
		byPID[r.PID] = r
	}
	for _, pid := range order {
		r := byPID[pid]
		children[r.PPID] = append(children[r.PPID], pid)
	}

	seen := make(map[string]bool, len(order))
	var walk func(pid string, depth int)
	walk = func(pid string, depth int) {
		if seen[pid] {
			return
		}
		seen[pid] = true
		p := byPID[pid]

		prefix := strings.Repeat("  ", depth)
		if depth > 0 {
			prefix = strings.Repeat("  ", depth-1) + paint(branchStyle, "└─ ", colorEnabled)
		}
		line := fmt.Sprintf("%s%s (%s)", prefix, graph.BaseName(p.Command), paint(mutedStyle, "pid "+p.PID, colorEnabled))
		if p.HasUnit() {
			line += " " + paint(unitStyle, "["+p.Unit+"]", colorEnabled)
		}
		fmt.Fprintln(w, line)

		for _, child := range children[pid] {
			walk(child, depth+1)
		}
	}

	for _, pid := range order {
		parent := byPID[pid].PPID
		if _, hasParent := byPID[parent]; !hasParent || parent == pid {
			walk(pid, 0)
		}
	}
	// Whatever is left hangs off a parent cycle.
	for _, pid := range order {
		walk(pid, 0)
	}
}
