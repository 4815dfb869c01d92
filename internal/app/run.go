package app

import (
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pranshuparmar/ps2gv/internal/config"
	"github.com/pranshuparmar/ps2gv/internal/graph"
	"github.com/pranshuparmar/ps2gv/internal/log"
	"github.com/pranshuparmar/ps2gv/internal/output"
	"github.com/pranshuparmar/ps2gv/internal/proc"
	"github.com/pranshuparmar/ps2gv/internal/process"
	"github.com/pranshuparmar/ps2gv/internal/render"
	"github.com/pranshuparmar/ps2gv/internal/source"
	"github.com/pranshuparmar/ps2gv/internal/tui"
	"github.com/pranshuparmar/ps2gv/pkg/model"
)

// preview is swapped out in tests.
var preview = tui.Preview

// pipeline turns one process table at a time into an output file.
type pipeline struct {
	cfg      *config.Config
	renderer *render.Renderer
	writeDOT bool
	preview  bool
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	p := &pipeline{
		cfg:      cfg,
		renderer: render.New(flagLayout, flagFormat),
		writeDOT: flagDOT,
		preview:  flagPreview,
	}
	out := cmd.OutOrStdout()
	colorEnabled := !flagNoColor

	if len(args) == 0 {
		return runLive(out, p, colorEnabled)
	}
	if flagSaveSnapshot != "" {
		log.Warnf("--save-snapshot only applies to live capture, ignoring it")
	}
	return runSnapshots(out, p, args, colorEnabled)
}

// runLive renders the current process table. Only a failed capture is an
// error; render and preview failures are reported.
func runLive(out io.Writer, p *pipeline, colorEnabled bool) error {
	table, err := proc.CaptureLive()
	if err != nil {
		return err
	}

	records := p.parse(table)
	if flagSaveSnapshot != "" {
		saveSnapshot(flagSaveSnapshot, table, records)
	}

	res := p.emit(table.Origin, records, render.LiveOutputName(p.format()))
	output.PrintShort(out, res, colorEnabled)
	if res.Err != nil {
		logFailure(res.Err)
	}
	return nil
}

// saveSnapshot stores the live table for replay. When units were resolved
// from this host's cgroups they are written into a UNIT column.
func saveSnapshot(path string, table proc.Table, records []model.ProcessRecord) {
	saved := table
	if table.ResolveUnits {
		saved.Text = process.Snapshot(records)
	}
	if err := proc.SaveSnapshot(path, saved); err != nil {
		log.Errorf("%v", err)
		return
	}
	log.Infof("saved process table to %s", path)
}

// runSnapshots renders every input it can. Inputs that fail are reported
// and skipped; the run only fails when none of the inputs could be read.
func runSnapshots(out io.Writer, p *pipeline, paths []string, colorEnabled bool) error {
	results := make([]output.Result, 0, len(paths))
	unreadable := 0
	for _, path := range paths {
		table, err := proc.CaptureSnapshot(path)
		if err != nil {
			unreadable++
			if len(paths) > 1 {
				logFailure(err)
			}
			results = append(results, output.Result{Input: path, Err: err})
			continue
		}
		res := p.emit(table.Origin, p.parse(table), render.OutputName(path, p.format()))
		if res.Err != nil {
			logFailure(res.Err)
		}
		results = append(results, res)
	}

	if len(results) == 1 {
		output.PrintShort(out, results[0], colorEnabled)
	} else {
		output.RunSummary(out, results, colorEnabled)
	}

	if unreadable == len(paths) {
		if unreadable == 1 {
			return results[0].Err
		}
		return fmt.Errorf("all %d inputs failed to open", unreadable)
	}
	return nil
}

func (p *pipeline) format() string {
	if p.writeDOT {
		return render.DOTFormat
	}
	return p.renderer.Format
}

// parse reads the records of one table, resolving units when the table
// describes this host.
func (p *pipeline) parse(table proc.Table) []model.ProcessRecord {
	resolver := source.NewResolver()
	records := process.Parse(table.Text, process.OptionsFor(table, resolver))
	if table.ResolveUnits {
		log.Debugf("%s: resolved units for %d processes", table.Origin, resolver.Resolved())
	}
	if len(records) == 0 {
		log.Warnf("%s: no process records found", table.Origin)
	}
	return records
}

// emit generates the graph for records and renders it to outputPath.
func (p *pipeline) emit(origin string, records []model.ProcessRecord, outputPath string) output.Result {
	res := output.Result{Input: origin, Output: outputPath}

	d := graph.Generate(records, p.cfg)
	res.Nodes = len(d.Nodes())

	if p.preview {
		ok, err := preview(origin, d)
		switch {
		case errors.Is(err, tui.ErrNoTerminal):
			log.Warnf("%v, rendering %s without preview", err, outputPath)
		case err != nil:
			res.Err = err
			return res
		case !ok:
			log.Infof("%s: skipped", origin)
			res.Skipped = true
			return res
		}
	}

	if p.writeDOT {
		res.Err = render.WriteDOT(d, outputPath)
	} else {
		res.Err = p.renderer.Render(d, outputPath)
	}
	return res
}

func logFailure(err error) {
	var captureErr *proc.CaptureError
	var renderErr *render.RenderError
	switch {
	case errors.As(err, &captureErr):
		log.Warnf("skipping %s: %v", captureErr.Path, pkgerrors.Cause(err))
	case errors.As(err, &renderErr):
		log.Errorf("%v", renderErr)
	default:
		log.Errorf("%v", err)
	}
}

// loadConfig reads the style file at path over the defaults. Bad entries
// are logged; only an unreadable file is an error.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.New()
	warnings, err := cfg.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warnf("%s: %v", path, w)
	}
	log.Debugf("config %s: scale by %s, %d colours", path, cfg.ScaleMode, len(cfg.Colours))
	return cfg, nil
}
