package model

// NotApplicable marks a zone on platforms without zones, and a unit that
// could not be resolved.
const NotApplicable = "-"

// Format identifies the column layout of a process table.
type Format int

const (
	FormatUnknown Format = iota
	// FormatZone is ZONE PPID PID RSS PCPU COMM.
	FormatZone
	// FormatReduced is PPID PID RSS PCPU COMM.
	FormatReduced
)

func (f Format) String() string {
	switch f {
	case FormatZone:
		return "zone"
	case FormatReduced:
		return "reduced"
	default:
		return "unknown"
	}
}

// ProcessRecord is one row of a process table. Numeric columns are kept as
// the text ps printed; consumers parse what they need.
type ProcessRecord struct {
	Zone    string `json:"zone" yaml:"zone"`
	PPID    string `json:"ppid" yaml:"ppid"`
	PID     string `json:"pid" yaml:"pid"`
	RSS     string `json:"rss" yaml:"rss"`
	PCPU    string `json:"pcpu" yaml:"pcpu"`
	Command string `json:"command" yaml:"command"`
	Unit    string `json:"unit" yaml:"unit"`
}

// HasUnit reports whether a service unit was resolved for the record.
func (r ProcessRecord) HasUnit() bool {
	return r.Unit != "" && r.Unit != NotApplicable
}
