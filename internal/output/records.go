package output

import (
	"fmt"
	"io"

	"github.com/pranshuparmar/ps2gv/pkg/model"
)

// RecordFormats lists the formats accepted by PrintRecords.
var RecordFormats = []string{"table", "json", "yaml", "tree"}

// PrintRecords writes records in the named format.
func PrintRecords(w io.Writer, records []model.ProcessRecord, format string, colorEnabled bool) error {
	switch format {
	case "", "table":
		PrintRecordTable(w, records, colorEnabled)
	case "json":
		return PrintRecordsJSON(w, records)
	case "yaml":
		return PrintRecordsYAML(w, records)
	case "tree":
		PrintTree(w, records, colorEnabled)
	default:
		return fmt.Errorf("unknown record format %q (want one of %v)", format, RecordFormats)
	}
	return nil
}
