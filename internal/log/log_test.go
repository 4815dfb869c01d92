package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New("test", WarnLevel, &buf)

	logger.Debug("hidden debug")
	logger.Infof("hidden %s", "info")
	logger.Warnf("shown %s", "warning")
	logger.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn level were written: %s", out)
	}
	if !strings.Contains(out, "shown warning") || !strings.Contains(out, "shown error") {
		t.Errorf("expected warn and error messages, got: %s", out)
	}
	if !strings.Contains(out, "module=test") {
		t.Errorf("expected module context, got: %s", out)
	}
}

func TestStdLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(InfoLevel)

	Debugf("before %d", 1)
	SetLevel(DebugLevel)
	Debugf("after %d", 2)

	out := buf.String()
	if strings.Contains(out, "before 1") {
		t.Errorf("debug message logged at info level: %s", out)
	}
	if !strings.Contains(out, "after 2") {
		t.Errorf("debug message missing at debug level: %s", out)
	}
}
