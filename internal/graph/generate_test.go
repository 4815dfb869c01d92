package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranshuparmar/ps2gv/internal/config"
	"github.com/pranshuparmar/ps2gv/internal/process"
	"github.com/pranshuparmar/ps2gv/pkg/model"
)

const zoneHeader = "ZONE PPID PID RSS PCPU COMM\n"

func generateFromText(t *testing.T, text string, cfg *config.Config) *Description {
	t.Helper()
	return Generate(process.Parse(text, process.Options{}), cfg)
}

func TestScenarioScaledNode(t *testing.T) {
	d := generateFromText(t, zoneHeader+"global 1 100 2048 15.5 /usr/bin/sshd\n", config.New())

	want := "digraph ptree {\n" +
		"node [style=filled];\n" +
		"  \"1\" -> \"100\";\n" +
		`  "100" [label="sshd" fillcolor="paleturquoise3" width="2.80" height="3.00" ` +
		`tooltip="PID: 100\nPPID: 1\nCPU%: 15.5\nRSS: 2048 KB\nCommand: sshd\nZone: global\nUnit: -"];` + "\n" +
		"}\n"
	assert.Equal(t, want, d.String())
}

func TestScenarioBelowThreshold(t *testing.T) {
	d := generateFromText(t, zoneHeader+"global 1 100 2048 0.05 /usr/bin/sshd\n", config.New())

	nodes := d.Nodes()
	require.Len(t, nodes, 1)
	assert.False(t, nodes[0].Sized)
	assert.NotContains(t, d.String(), "width=")
	assert.NotContains(t, d.String(), "height=")
}

func TestScenarioMalformedLineSkipped(t *testing.T) {
	text := zoneHeader +
		"global 1 100\n" +
		"global 1 200 10 0.0 cron\n"
	d := generateFromText(t, text, config.New())

	assert.Len(t, d.Statements, 2)
	assert.NotContains(t, d.String(), `"100"`)
	assert.Contains(t, d.String(), `"1" -> "200";`)
}

func TestScaledSizes(t *testing.T) {
	cfg := config.New()
	tests := []struct {
		pcpu       string
		wantWidth  float64
		wantHeight float64
	}{
		{"0.1", 1.0 + 1.8*0.01, 0.7 + 2.3*0.01},
		{"5", 1.0 + 1.8*0.5, 0.7 + 2.3*0.5},
		{"10", 2.8, 3.0},
		{"250", 2.8, 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.pcpu, func(t *testing.T) {
			d := Generate([]model.ProcessRecord{{PPID: "1", PID: "2", PCPU: tt.pcpu, RSS: "1", Command: "x"}}, cfg)
			n := d.Nodes()[0]
			require.True(t, n.Sized)
			assert.InDelta(t, tt.wantWidth, n.Width, 1e-9)
			assert.InDelta(t, tt.wantHeight, n.Height, 1e-9)
		})
	}
}

func TestRSSScaleMode(t *testing.T) {
	cfg := config.New()
	cfg.ScaleMode = config.ScaleRSS
	cfg.MinRSSThreshold = 100
	cfg.RSSLimit = 1000

	d := Generate([]model.ProcessRecord{
		{PPID: "1", PID: "2", PCPU: "99", RSS: "50", Command: "small"},
		{PPID: "1", PID: "3", PCPU: "0", RSS: "500", Command: "big"},
	}, cfg)
	nodes := d.Nodes()
	require.Len(t, nodes, 2)
	assert.False(t, nodes[0].Sized, "cpu must not drive size in rss mode")
	assert.True(t, nodes[1].Sized)
	assert.InDelta(t, 1.0+1.8*0.5, nodes[1].Width, 1e-9)
}

func TestDegenerateBoundsNeverScale(t *testing.T) {
	for _, limit := range []float64{0.1, 0.05, 0, -3} {
		cfg := config.New()
		cfg.CPULimit = limit
		var records []model.ProcessRecord
		for _, v := range []string{"0", "0.1", "1", "50", "1000"} {
			records = append(records, model.ProcessRecord{PPID: "1", PID: "9", PCPU: v, Command: "x"})
		}
		d := Generate(records, cfg)
		for _, n := range d.Nodes() {
			assert.False(t, n.Sized, "limit %v pcpu %s", limit, n.Record.PCPU)
		}
		assert.NotContains(t, d.String(), "width=")
	}
}

func TestUnparsableMetricIsZero(t *testing.T) {
	d := Generate([]model.ProcessRecord{{PPID: "1", PID: "2", PCPU: "n/a", Command: "x"}}, config.New())
	assert.False(t, d.Nodes()[0].Sized)
}

func TestUnitClassification(t *testing.T) {
	cfg := config.New()
	cfg.Colours["sshd.service"] = "gold"

	d := Generate([]model.ProcessRecord{
		{Zone: "global", PPID: "1", PID: "100", PCPU: "0", RSS: "1", Command: "/usr/sbin/sshd", Unit: "sshd.service"},
		{Zone: "global", PPID: "1", PID: "200", PCPU: "0", RSS: "1", Command: "/usr/sbin/cron", Unit: "cron.service"},
		{Zone: "global", PPID: "1", PID: "300", PCPU: "0", RSS: "1", Command: "/bin/bash", Unit: "-"},
	}, cfg)
	nodes := d.Nodes()
	require.Len(t, nodes, 3)

	assert.Equal(t, `sshd\nsshd.service`, nodes[0].Label)
	assert.Equal(t, "gold", nodes[0].FillColor)

	// unit present but not configured: default colour, not the command's
	assert.Equal(t, `cron\ncron.service`, nodes[1].Label)
	assert.Equal(t, "silver", nodes[1].FillColor)

	assert.Equal(t, "bash", nodes[2].Label)
	assert.Equal(t, "paleturquoise3", nodes[2].FillColor)
}

func TestTooltip(t *testing.T) {
	rec := model.ProcessRecord{Zone: "web", PPID: "1", PID: "7", PCPU: "1.0", RSS: "64", Command: `/opt/"odd"/app`, Unit: "app.service"}

	d := Generate([]model.ProcessRecord{rec}, config.New())
	tip := d.Nodes()[0].Tooltip
	assert.Equal(t, `PID: 7\nPPID: 1\nCPU%: 1.0\nRSS: 64 KB\nCommand: app\nZone: web\nUnit: app.service`, tip)
	assert.NotContains(t, tip, "\n", "tooltip must use escaped newlines only")

	cfg := config.New()
	cfg.HideZones = true
	tip = Generate([]model.ProcessRecord{rec}, cfg).Nodes()[0].Tooltip
	assert.NotContains(t, tip, "Zone:")
}

func TestQuotesReplaced(t *testing.T) {
	rec := model.ProcessRecord{Zone: `z"1`, PPID: "1", PID: "7", PCPU: "0", RSS: "0", Command: `say"hi`, Unit: "-"}
	d := Generate([]model.ProcessRecord{rec}, config.New())
	n := d.Nodes()[0]

	assert.NotContains(t, n.Tooltip, `"`)
	assert.Contains(t, n.Tooltip, `Zone: z'1`)
	assert.Equal(t, `say'hi`, n.Label)
}

func TestBackslashesAndColoursEscaped(t *testing.T) {
	cfg := config.New()
	cfg.Colours[`odd\`] = `light"blue`
	recs := []model.ProcessRecord{
		{Zone: "global", PPID: "1", PID: "7", PCPU: "0", RSS: "0", Command: `odd\`, Unit: "-"},
		{Zone: "global", PPID: "1", PID: "8", PCPU: "0", RSS: "0", Command: "worker", Unit: `a\b.service`},
	}
	d := Generate(recs, cfg)
	nodes := d.Nodes()
	require.Len(t, nodes, 2)

	assert.Equal(t, `odd\\`, nodes[0].Label)
	assert.Equal(t, `light'blue`, nodes[0].FillColor)
	assert.Contains(t, nodes[0].Tooltip, `Command: odd\\\nZone: global`)
	assert.Equal(t, `worker\na\\b.service`, nodes[1].Label)

	assert.Contains(t, d.String(), `  "7" [label="odd\\" fillcolor="light'blue" tooltip=`)
}

func TestInvalidPIDsSkipped(t *testing.T) {
	d := Generate([]model.ProcessRecord{
		{PPID: "1", PID: "", Command: "a"},
		{PPID: "1", PID: "PID", Command: "b"},
		{PPID: "1", PID: "5", Command: "c"},
	}, config.New())
	require.Len(t, d.Nodes(), 1)
	assert.Equal(t, "5", d.Nodes()[0].ID)
}

func TestDuplicatePIDsEmittedInOrder(t *testing.T) {
	d := Generate([]model.ProcessRecord{
		{PPID: "1", PID: "5", Command: "first"},
		{PPID: "2", PID: "5", Command: "second"},
	}, config.New())

	out := d.String()
	assert.Equal(t, 2, strings.Count(out, `"5" [`))
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	assert.IsType(t, Edge{}, d.Statements[0])
	assert.IsType(t, Node{}, d.Statements[1])
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"/usr/bin/sshd": "sshd",
		"sshd":          "sshd",
		"-bash":         "-bash",
		"/trailing/":    "",
		"":              "",
		"a/b/c/d":       "d",
	}
	for in, want := range tests {
		got := BaseName(in)
		assert.Equal(t, want, got, "BaseName(%q)", in)
		assert.NotContains(t, got, "/")
		assert.Equal(t, got, BaseName(got), "BaseName must be idempotent for %q", in)
	}
}

func TestEmptyDescription(t *testing.T) {
	d := Generate(nil, config.New())
	assert.Equal(t, "digraph ptree {\nnode [style=filled];\n}\n", d.String())
}
