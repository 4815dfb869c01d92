package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pranshuparmar/ps2gv/pkg/model"
)

func PrintRecordsJSON(w io.Writer, records []model.ProcessRecord) error {
	if records == nil {
		records = []model.ProcessRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func PrintRecordsYAML(w io.Writer, records []model.ProcessRecord) error {
	if records == nil {
		records = []model.ProcessRecord{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
