package log

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var brackets = map[Level]string{
	Trace: "[TRACE]",
	Debug: "[DEBUG]",
	Info:  "[INFO] ",
	Warn:  "[WARN] ",
	Error: "[ERROR]",
}

type writer struct {
	buf bytes.Buffer
	out io.Writer
}

func newWriter(w io.Writer) *writer {
	return &writer{out: w}
}

func (w *writer) Flush() (err error) {
	_, err = w.out.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

type leveledLogger struct {
	name       string
	caller     bool
	timeFormat string
	level      Level

	// Shared by derived loggers since they share the output as well.
	mutex  *sync.Mutex
	writer *writer
}

func (l *leveledLogger) derive(name string) Logger {
	return &leveledLogger{
		name:       name,
		caller:     l.caller,
		timeFormat: l.timeFormat,
		level:      l.level,
		mutex:      l.mutex,
		writer:     l.writer,
	}
}

func (l *leveledLogger) Named(name string) Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return l.derive(name)
}

func (l *leveledLogger) enabled(level Level) bool {
	return l.level != Off && level <= l.level
}

func (l *leveledLogger) log(level Level, msg string) {
	if !l.enabled(level) {
		return
	}
	tm := time.Now()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.writePlain(tm, level, msg)
}

func (l *leveledLogger) writePlain(tm time.Time, level Level, msg string) {
	w := &l.writer.buf

	w.WriteString(tm.Format(l.timeFormat))

	w.WriteByte(' ')
	w.WriteString(levelToBracket(level))

	if l.caller {
		if _, file, line, ok := runtime.Caller(3); ok {
			w.WriteByte(' ')
			w.WriteString(trimCallerPath(file))
			w.WriteByte(':')
			w.WriteString(strconv.Itoa(line))
			w.WriteByte(':')
		}
	}

	w.WriteByte(' ')
	if l.name != "" {
		w.WriteString(l.name)
		w.WriteString(": ")
	}

	w.WriteString(msg)
	w.WriteByte('\n')
	l.writer.Flush()
}

// trimCallerPath returns only the last 2 segments of the path.
func trimCallerPath(path string) string {
	var idx int
	if idx = strings.LastIndexByte(path, '/'); idx == -1 {
		return path
	}
	if idx = strings.LastIndexByte(path[:idx], '/'); idx == -1 {
		return path
	}
	return path[idx+1:]
}

func levelToBracket(level Level) string {
	s, ok := brackets[level]
	if !ok {
		s = "[?????]"
	}
	return s
}

func (l *leveledLogger) Trace(msg string) { l.log(Trace, msg) }
func (l *leveledLogger) Debug(msg string) { l.log(Debug, msg) }
func (l *leveledLogger) Info(msg string)  { l.log(Info, msg) }
func (l *leveledLogger) Warn(msg string)  { l.log(Warn, msg) }
func (l *leveledLogger) Error(msg string) { l.log(Error, msg) }

func (l *leveledLogger) Tracef(format string, args ...interface{}) {
	l.log(Trace, fmt.Sprintf(format, args...))
}

func (l *leveledLogger) Debugf(format string, args ...interface{}) {
	l.log(Debug, fmt.Sprintf(format, args...))
}

func (l *leveledLogger) Infof(format string, args ...interface{}) {
	l.log(Info, fmt.Sprintf(format, args...))
}

func (l *leveledLogger) Warnf(format string, args ...interface{}) {
	l.log(Warn, fmt.Sprintf(format, args...))
}

func (l *leveledLogger) Errorf(format string, args ...interface{}) {
	l.log(Error, fmt.Sprintf(format, args...))
}
