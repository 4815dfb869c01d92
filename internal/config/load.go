package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const colourPrefix = "colour."

// ConfigWarning describes a configuration line that was ignored.
type ConfigWarning struct {
	Line   int
	Key    string
	Value  string
	Reason string
}

func (w ConfigWarning) Error() string {
	return fmt.Sprintf("line %d: %s=%q: %s", w.Line, w.Key, w.Value, w.Reason)
}

// Load applies the key=value settings in path on top of c. A missing file is
// not an error. Malformed lines are skipped and reported as warnings; each
// line is either applied completely or not at all.
func (c *Config) Load(path string) ([]ConfigWarning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var warnings []ConfigWarning
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = trim(key)
		value = trim(value)

		if reason := c.apply(key, value); reason != "" {
			warnings = append(warnings, ConfigWarning{Line: lineNo, Key: key, Value: value, Reason: reason})
		}
	}
	if err := scanner.Err(); err != nil {
		return warnings, errors.Wrapf(err, "scan config %s", path)
	}
	return warnings, nil
}

// apply sets one key and returns a non-empty reason when it was rejected.
func (c *Config) apply(key, value string) string {
	if name, ok := strings.CutPrefix(key, colourPrefix); ok {
		if name == "" {
			return "missing command name"
		}
		c.Colours[name] = value
		return ""
	}

	switch key {
	case "hide_zones":
		c.HideZones = value == "true"
		return ""
	case "scale_mode":
		mode, ok := ParseScaleMode(value)
		if !ok {
			return "unknown scale_mode, valid options are 'cpu' or 'rss'"
		}
		c.ScaleMode = mode
		return ""
	}

	field := c.numericField(key)
	if field == nil {
		return "unknown key"
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "not a number"
	}
	*field = v
	return ""
}

func (c *Config) numericField(key string) *float64 {
	switch key {
	case "min_cpu_threshold":
		return &c.MinCPUThreshold
	case "cpu_limit":
		return &c.CPULimit
	case "min_rss_threshold":
		return &c.MinRSSThreshold
	case "rss_limit":
		return &c.RSSLimit
	case "base_width":
		return &c.BaseWidth
	case "width_factor":
		return &c.WidthFactor
	case "base_height":
		return &c.BaseHeight
	case "height_factor":
		return &c.HeightFactor
	}
	return nil
}

func trim(s string) string {
	return strings.Trim(s, " \t\r")
}
