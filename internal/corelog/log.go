// Package corelog is the thin logging seam used by the console, the bus and
// the CPU (through the bus). They log through the Logger interface instead
// of a concrete type so that tests (and hosts that don't care about
// diagnostics) can swap in a discarding implementation.
package corelog

import "github.com/sirupsen/logrus"

// Logger is the surface the engine logs through. It exposes three
// severities: Debugf, Infof and Errorf. The engine itself only calls
// Debugf, when the CPU executes an illegal opcode as a no-op.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns the default logger: a logrus.Logger at InfoLevel with a
// plain, timestamp-free text formatter, matching the console's own output
// conventions rather than logrus's defaults.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

type discard struct{}

func (discard) Infof(string, ...interface{})  {}
func (discard) Errorf(string, ...interface{}) {}
func (discard) Debugf(string, ...interface{}) {}

// Discard returns a Logger that drops everything. Used by tests and by
// hosts that have no use for engine diagnostics.
func Discard() Logger {
	return discard{}
}
