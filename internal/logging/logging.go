package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is what the engine's components log through. *log.Logger from
// charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

var _ Logger = (*log.Logger)(nil)

// New returns a logger writing timestamped, leveled lines to w, prefixed
// with name. Debug level is enabled when JOBSCRAPE_DEBUG=1.
func New(name string, w io.Writer) *log.Logger {
	level := log.InfoLevel
	if os.Getenv("JOBSCRAPE_DEBUG") == "1" {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          name,
		Level:           level,
	})
}

// Named derives a child logger for a component.
func Named(parent *log.Logger, name string) *log.Logger {
	return parent.WithPrefix(parent.GetPrefix() + "." + name)
}

// Discard is a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
