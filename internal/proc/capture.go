package proc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	pkgerrors "github.com/pkg/errors"

	"github.com/pranshuparmar/ps2gv/internal/log"
	"github.com/pranshuparmar/ps2gv/pkg/model"
)

// LiveOrigin names the origin of a table captured from ps.
const LiveOrigin = "ps"

// Table is the raw text of a process table together with what is known
// about its layout before parsing.
type Table struct {
	Text string
	// Format is FormatUnknown when it has to be detected from the header.
	Format model.Format
	// ResolveUnits is set when the rows describe processes on this host
	// and their cgroups can be inspected.
	ResolveUnits bool
	// Origin is the snapshot path, or LiveOrigin.
	Origin string
}

// CaptureError reports that a process table could not be obtained:
// ps could not be run, or a snapshot file could not be read.
type CaptureError struct {
	Op   string
	Path string
	Err  error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors walk through the capture error.
func (e *CaptureError) Cause() error { return e.Err }

// LiveColumns returns the ps column list used on this platform.
func LiveColumns() string { return psColumns }

// CaptureLive runs ps once and returns its complete output.
// An empty process list is not an error.
func CaptureLive() (Table, error) {
	out, err := Run("ps", "-eo", psColumns)
	if err != nil {
		// ps may exit non-zero after printing a usable table (e.g. a process
		// vanished mid-listing); keep the table in that case.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || len(out) == 0 {
			return Table{}, &CaptureError{Op: "run", Path: "ps", Err: err}
		}
		log.Warnf("ps exited with %v, using partial output", err)
	}

	log.Debugf("captured %d bytes from ps -eo %s", len(out), psColumns)
	return Table{
		Text:         string(out),
		Format:       liveFormat,
		ResolveUnits: resolveUnits,
		Origin:       LiveOrigin,
	}, nil
}

// CaptureSnapshot reads a previously saved process table verbatim.
func CaptureSnapshot(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, &CaptureError{Op: "open", Path: path, Err: err}
	}
	return Table{
		Text:   string(data),
		Format: model.FormatUnknown,
		Origin: path,
	}, nil
}

// SaveSnapshot writes the raw text of t to path so it can be replayed later.
func SaveSnapshot(path string, t Table) error {
	if err := os.WriteFile(path, []byte(t.Text), 0o644); err != nil {
		return pkgerrors.Wrapf(err, "save snapshot to %s", path)
	}
	return nil
}
