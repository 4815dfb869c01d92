// Package process turns raw process-table text into model.ProcessRecord values.
package process

import (
	"strings"

	"github.com/pranshuparmar/ps2gv/internal/log"
	"github.com/pranshuparmar/ps2gv/internal/proc"
	"github.com/pranshuparmar/ps2gv/pkg/model"
)

// UnitResolver looks up the service unit owning a pid.
type UnitResolver interface {
	Resolve(pid string) string
}

// Options controls Parse.
type Options struct {
	// Format of the rows; FormatUnknown means detect it from the header.
	Format model.Format
	// Resolver, when set, fills in the unit of rows that don't carry one.
	Resolver UnitResolver
}

// OptionsFor builds parse options for a captured table. The resolver is only
// used when the table describes processes on this host.
func OptionsFor(t proc.Table, r UnitResolver) Options {
	opts := Options{Format: t.Format}
	if t.ResolveUnits {
		opts.Resolver = r
	}
	return opts
}

// DetectFormat inspects a header line. A ZONE column selects the zone
// format; a PPID column without ZONE selects the reduced format.
func DetectFormat(header string) model.Format {
	if strings.Contains(header, "ZONE") {
		return model.FormatZone
	}
	if strings.Contains(header, "PPID") {
		return model.FormatReduced
	}
	return model.FormatUnknown
}

// Parse reads one record per line after the header. The header is always
// discarded. Lines with too few columns, and lines whose pid is not a
// decimal number, are skipped.
func Parse(text string, opts Options) []model.ProcessRecord {
	var (
		records []model.ProcessRecord
		cols    layout
		skipped int
		header  = true
	)

	for line := range strings.Lines(text) {
		if header {
			header = false
			format := opts.Format
			if format == model.FormatUnknown {
				format = DetectFormat(line)
			}
			if format == model.FormatUnknown {
				log.Debugf("unrecognised process table header %q", strings.TrimSpace(line))
				return nil
			}
			cols = newLayout(format, line)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		rec, ok := cols.parse(fields)
		if !ok || !IsPID(rec.PID) {
			skipped++
			continue
		}
		if opts.Resolver != nil && !rec.HasUnit() {
			rec.Unit = opts.Resolver.Resolve(rec.PID)
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		log.Debugf("skipped %d malformed process table lines", skipped)
	}
	return records
}

// IsPID reports whether s is a non-empty run of ASCII digits.
func IsPID(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// layout describes the positional columns of one table.
type layout struct {
	format model.Format
	// unitColumn is set when a saved snapshot carries a trailing UNIT column.
	unitColumn bool
}

func newLayout(format model.Format, header string) layout {
	l := layout{format: format}
	if format == model.FormatZone {
		hf := strings.Fields(header)
		l.unitColumn = len(hf) > 0 && strings.EqualFold(hf[len(hf)-1], "UNIT")
	}
	return l
}

func (l layout) parse(fields []string) (model.ProcessRecord, bool) {
	switch l.format {
	case model.FormatZone:
		want := 6
		if l.unitColumn {
			want = 7
		}
		if len(fields) < want {
			return model.ProcessRecord{}, false
		}
		rec := model.ProcessRecord{
			Zone: fields[0],
			PPID: fields[1],
			PID:  fields[2],
			RSS:  fields[3],
			PCPU: fields[4],
			Unit: model.NotApplicable,
		}
		rest := fields[5:]
		if l.unitColumn {
			rec.Unit = rest[len(rest)-1]
			rest = rest[:len(rest)-1]
		}
		rec.Command = strings.Join(rest, " ")
		return rec, true

	case model.FormatReduced:
		if len(fields) < 5 {
			return model.ProcessRecord{}, false
		}
		return model.ProcessRecord{
			Zone:    model.NotApplicable,
			PPID:    fields[0],
			PID:     fields[1],
			RSS:     fields[2],
			PCPU:    fields[3],
			Command: strings.Join(fields[4:], " "),
			Unit:    model.NotApplicable,
		}, true
	}
	return model.ProcessRecord{}, false
}
