// Package log implements the leveled logger used across bintree. Lines are
// formatted as "<time> [LEVEL] <name>: <message>".
package log

import (
	"io"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level uint32

const (
	// NotSet level is used to indicate that no level has been set
	// and allow for a default to be used.
	NotSet Level = iota

	// Off disables every trace.
	Off

	// Error designates failures the session reports but survives.
	Error

	// Warn designates rejected user input (unknown parents, malformed
	// numbers).
	Warn

	// Info designates tree mutations.
	Info

	// Debug designates state machine transitions.
	Debug

	// Trace designates every line read from the input.
	Trace
)

var levelNames = map[Level]string{
	Off:   "off",
	Error: "error",
	Warn:  "warn",
	Info:  "info",
	Debug: "debug",
	Trace: "trace",
}

// String returns a string representation of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// LevelFromString returns a Level type for the named log level, or
// NotSet if the level passed as argument is invalid.
func LevelFromString(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	for l, name := range levelNames {
		if name == level {
			return l
		}
	}
	return NotSet
}

// Logger describes the interface that must be implemented by all loggers.
type Logger interface {
	Trace(msg string)
	Tracef(format string, args ...interface{})
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
	// Named creates a logger that will prepend the given name on front of
	// all messages. If the logger has a previously set name, the new value
	// will be appended to it.
	Named(name string) Logger
}

// LoggerOptions can be used to configure a new logger.
type LoggerOptions struct {
	// Name of the subsystem to prefix logs with.
	Name string

	// Level is the threshold for the logger. Any trace less severe is
	// suppressed.
	Level Level

	// Output is the writer where to write logs to. If nil, defaults to
	// DefaultOutput.
	Output io.Writer

	// IncludeLocation includes file and line information in each log line.
	IncludeLocation bool
}

// New returns a new logger configured with the given options.
func New(opts *LoggerOptions) Logger {
	if opts == nil {
		opts = &LoggerOptions{}
	}

	output := opts.Output
	if output == nil {
		output = DefaultOutput
	}

	level := opts.Level
	if level == NotSet {
		level = DefaultLevel
	}

	return &leveledLogger{
		name:       opts.Name,
		caller:     opts.IncludeLocation,
		timeFormat: DefaultTimeFormat,
		level:      level,
		mutex:      new(sync.Mutex),
		writer:     newWriter(output),
	}
}
