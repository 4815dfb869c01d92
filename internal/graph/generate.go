// Package graph builds the Graphviz description of a process tree.
package graph

import (
	"strconv"
	"strings"

	"github.com/pranshuparmar/ps2gv/internal/config"
	"github.com/pranshuparmar/ps2gv/pkg/model"
)

// lineBreak is how a newline is written inside a DOT string.
const lineBreak = `\n`

// Generate builds the graph for records using the style policy in cfg.
// Every usable record contributes an edge from its parent followed by its
// own node, in input order. Duplicate pids are emitted as they come; the
// renderer keeps the last attributes it sees.
func Generate(records []model.ProcessRecord, cfg *config.Config) *Description {
	threshold, limit, scalable := cfg.Scaling()
	d := &Description{Statements: make([]Statement, 0, 2*len(records))}

	for _, rec := range records {
		if rec.PID == "" || rec.PID[0] < '0' || rec.PID[0] > '9' {
			continue
		}

		comm := BaseName(rec.Command)
		key := ClassificationKey(rec)

		label := sanitize(comm)
		if key != comm {
			label += lineBreak + sanitize(rec.Unit)
		}

		node := Node{
			ID:        sanitize(rec.PID),
			Label:     label,
			FillColor: sanitize(cfg.ColourFor(key)),
			Tooltip:   tooltip(rec, comm, cfg.HideZones),
			Record:    rec,
		}

		if value := metric(rec, cfg.ScaleMode); scalable && value >= threshold {
			if value > limit {
				value = limit
			}
			ratio := value / limit
			node.Sized = true
			node.Width = cfg.BaseWidth + cfg.WidthFactor*ratio
			node.Height = cfg.BaseHeight + cfg.HeightFactor*ratio
		}

		d.Statements = append(d.Statements,
			Edge{From: sanitize(rec.PPID), To: node.ID},
			node,
		)
	}
	return d
}

// BaseName strips everything up to the last path separator.
func BaseName(command string) string {
	if i := strings.LastIndexByte(command, '/'); i >= 0 {
		return command[i+1:]
	}
	return command
}

// ClassificationKey is the resolved unit when there is one, otherwise the
// command's base name.
func ClassificationKey(rec model.ProcessRecord) string {
	if rec.HasUnit() {
		return rec.Unit
	}
	return BaseName(rec.Command)
}

// metric returns the value that drives node size; unparsable values count
// as zero.
func metric(rec model.ProcessRecord, mode config.ScaleMode) float64 {
	raw := rec.PCPU
	if mode == config.ScaleRSS {
		raw = rec.RSS
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func tooltip(rec model.ProcessRecord, comm string, hideZones bool) string {
	lines := []string{
		"PID: " + sanitize(rec.PID),
		"PPID: " + sanitize(rec.PPID),
		"CPU%: " + sanitize(rec.PCPU),
		"RSS: " + sanitize(rec.RSS) + " KB",
		"Command: " + sanitize(comm),
	}
	if !hideZones {
		lines = append(lines, "Zone: "+sanitize(rec.Zone))
	}
	lines = append(lines, "Unit: "+sanitize(rec.Unit))
	return strings.Join(lines, lineBreak)
}

// dotEscaper doubles backslashes and turns double quotes into apostrophes,
// so a value can neither end its DOT string early nor start an escape.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `'`)

// sanitize makes s safe to place between the quotes of a DOT string.
func sanitize(s string) string {
	return dotEscaper.Replace(s)
}
