package log

import (
	"io"
	"os"
	"sync"
)

// DefaultTimeFormat to use for logging. This is a version of RFC3339 that
// contains millisecond precision.
const DefaultTimeFormat = "2006-01-02T15:04:05.000Z07:00"

var (
	defLock   sync.Mutex
	defLogger Logger

	// DefaultOutput is used as the default log output. Stdout is reserved
	// for the interactive session.
	DefaultOutput io.Writer = os.Stderr

	// DefaultLevel is used as the default log level.
	DefaultLevel = Error
)

// Default returns the process wide logger, creating it from DefaultLevel
// and DefaultOutput on first use.
func Default() Logger {
	defLock.Lock()
	defer defLock.Unlock()
	if defLogger == nil {
		defLogger = New(&LoggerOptions{
			Level:  DefaultLevel,
			Output: DefaultOutput,
		})
	}
	return defLogger
}

func L() Logger {
	return Default()
}

// SetDefault replaces the process wide logger and returns the previous one.
func SetDefault(log Logger) Logger {
	defLock.Lock()
	defer defLock.Unlock()
	prev := defLogger
	defLogger = log
	return prev
}
