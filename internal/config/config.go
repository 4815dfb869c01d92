// Package config holds the style policy applied to process graphs: which
// colour each command or unit gets, and how node size follows resource use.
package config

import "fmt"

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "ps2gv.conf"

// ScaleMode selects the metric that drives node size.
type ScaleMode int

const (
	ScaleCPU ScaleMode = iota
	ScaleRSS
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleCPU:
		return "cpu"
	case ScaleRSS:
		return "rss"
	default:
		return fmt.Sprintf("ScaleMode(%d)", int(m))
	}
}

// ParseScaleMode accepts "cpu" or "rss".
func ParseScaleMode(s string) (ScaleMode, bool) {
	switch s {
	case "cpu":
		return ScaleCPU, true
	case "rss":
		return ScaleRSS, true
	}
	return ScaleCPU, false
}

// Config is read once at startup and treated as immutable afterwards.
type Config struct {
	Colours map[string]string

	ScaleMode ScaleMode
	// CPU bounds are percentages, RSS bounds are kilobytes.
	MinCPUThreshold float64
	CPULimit        float64
	MinRSSThreshold float64
	RSSLimit        float64

	BaseWidth    float64
	WidthFactor  float64
	BaseHeight   float64
	HeightFactor float64

	HideZones bool
}

// New returns a Config with the built-in defaults.
func New() *Config {
	return &Config{
		Colours:         DefaultColours(),
		ScaleMode:       ScaleCPU,
		MinCPUThreshold: 0.1,
		CPULimit:        10.0,
		MinRSSThreshold: 10 * 1024,
		RSSLimit:        1024 * 1024,
		BaseWidth:       1.0,
		WidthFactor:     1.8,
		BaseHeight:      0.7,
		HeightFactor:    2.3,
	}
}

// ColourFor returns the colour for a classification key, falling back to
// the default entry.
func (c *Config) ColourFor(key string) string {
	if colour, ok := c.Colours[key]; ok {
		return colour
	}
	return c.Colours[DefaultColour]
}

// Scaling returns the threshold and limit of the active metric. ok is false
// when the bounds do not satisfy limit > threshold >= 0, in which case no
// node should be scaled.
func (c *Config) Scaling() (threshold, limit float64, ok bool) {
	threshold, limit = c.MinCPUThreshold, c.CPULimit
	if c.ScaleMode == ScaleRSS {
		threshold, limit = c.MinRSSThreshold, c.RSSLimit
	}
	return threshold, limit, threshold >= 0 && limit > threshold
}
