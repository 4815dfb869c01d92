// Package log provides the leveled logger used across ps2gv.
// It is a thin layer over log15 so that callers don't depend on it directly.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	log15 "github.com/inconshreveable/log15"
	"golang.org/x/term"
)

// Level type
type Level log15.Lvl

const (
	// DebugLevel is only enabled with --verbose.
	DebugLevel = Level(log15.LvlDebug)
	// InfoLevel is the default level.
	InfoLevel = Level(log15.LvlInfo)
	// WarnLevel is used for recoverable problems such as configuration warnings.
	WarnLevel = Level(log15.LvlWarn)
	// ErrorLevel is used for inputs that could not be processed.
	ErrorLevel = Level(log15.LvlError)
)

var (
	stdMux    sync.Mutex
	stdLevel            = InfoLevel
	stdOutput io.Writer = os.Stderr
	std                 = New("ps2gv", InfoLevel, os.Stderr).(*glueLogger)
)

// Logger defines the logging surface used by ps2gv packages.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// New creates a logger tagged with the given module name, writing to w.
func New(module string, level Level, w io.Writer) Logger {
	logger := log15.New("module", module)
	logger.SetHandler(newHandler(level, w))
	return &glueLogger{logger}
}

// SetLevel defines at which level the std logger logs.
func SetLevel(level Level) {
	stdMux.Lock()
	defer stdMux.Unlock()
	stdLevel = level
	std.internal.SetHandler(newHandler(stdLevel, stdOutput))
}

// SetOutput redirects the std logger.
func SetOutput(w io.Writer) {
	stdMux.Lock()
	defer stdMux.Unlock()
	stdOutput = w
	std.internal.SetHandler(newHandler(stdLevel, stdOutput))
}

// Debugf logs a message at level Debug on the standard logger.
func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

// Infof logs a message at level Info on the standard logger.
func Infof(format string, args ...interface{}) { std.Infof(format, args...) }

// Warnf logs a message at level Warn on the standard logger.
func Warnf(format string, args ...interface{}) { std.Warnf(format, args...) }

// Errorf logs a message at level Error on the standard logger.
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

func newHandler(level Level, w io.Writer) log15.Handler {
	format := log15.LogfmtFormat()
	if isTerminal(w) {
		format = log15.TerminalFormat()
	}
	return log15.LvlFilterHandler(log15.Lvl(level), log15.StreamHandler(w, format))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type glueLogger struct {
	internal log15.Logger
}

func (l *glueLogger) Debug(args ...interface{}) { l.internal.Debug(fmt.Sprint(args...)) }
func (l *glueLogger) Debugf(format string, args ...interface{}) {
	l.internal.Debug(fmt.Sprintf(format, args...))
}
func (l *glueLogger) Info(args ...interface{}) { l.internal.Info(fmt.Sprint(args...)) }
func (l *glueLogger) Infof(format string, args ...interface{}) {
	l.internal.Info(fmt.Sprintf(format, args...))
}
func (l *glueLogger) Warn(args ...interface{}) { l.internal.Warn(fmt.Sprint(args...)) }
func (l *glueLogger) Warnf(format string, args ...interface{}) {
	l.internal.Warn(fmt.Sprintf(format, args...))
}
func (l *glueLogger) Error(args ...interface{}) { l.internal.Error(fmt.Sprint(args...)) }
func (l *glueLogger) Errorf(format string, args ...interface{}) {
	l.internal.Error(fmt.Sprintf(format, args...))
}
