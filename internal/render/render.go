// Package render hands graph descriptions to Graphviz.
package render

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pranshuparmar/ps2gv/internal/graph"
	"github.com/pranshuparmar/ps2gv/internal/log"
	"github.com/pranshuparmar/ps2gv/internal/proc"
)

const (
	DefaultLayout = "fdp"
	DefaultFormat = "svg"
	// DOTFormat is the extension used when the description is written as-is.
	DOTFormat = "dot"

	liveStem = "ptree"
)

// RenderError reports that an output file could not be produced.
type RenderError struct {
	Output string
	Err    error
	// Stderr holds what Graphviz printed, if it ran at all.
	Stderr string
}

func (e *RenderError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("render %s: %v: %s", e.Output, e.Err, e.Stderr)
	}
	return fmt.Sprintf("render %s: %v", e.Output, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Cause() error { return e.Err }

// Renderer lays out and rasterizes descriptions with the dot command.
type Renderer struct {
	Layout string
	Format string
}

func New(layout, format string) *Renderer {
	if layout == "" {
		layout = DefaultLayout
	}
	if format == "" {
		format = DefaultFormat
	}
	return &Renderer{Layout: layout, Format: format}
}

// Render writes the image for d to output.
func (r *Renderer) Render(d *graph.Description, output string) error {
	args := []string{"-K" + r.Layout, "-T" + r.Format, "-o", output}
	log.Debugf("running dot %s", strings.Join(args, " "))

	if _, err := proc.RunWithInput(d.Bytes(), "dot", args...); err != nil {
		rerr := &RenderError{Output: output, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			rerr.Stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		return rerr
	}
	return nil
}

// WriteDOT writes the description itself to output, for use without Graphviz.
func WriteDOT(d *graph.Description, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return &RenderError{Output: output, Err: err}
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return &RenderError{Output: output, Err: err}
	}
	if err := f.Close(); err != nil {
		return &RenderError{Output: output, Err: err}
	}
	return nil
}

// OutputName derives the output file for a snapshot: its base name with the
// extension replaced by format. Outputs go to the working directory.
func OutputName(input, format string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return stem + "." + format
}

// LiveOutputName is the output file for a live capture.
func LiveOutputName(format string) string {
	return liveStem + "." + format
}
