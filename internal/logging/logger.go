// Package logging provides the leveled key/value logger used by sigwatch.
// Watchers and matchers log their lifecycle at debug level; the default
// level is warn, so tests stay quiet unless verbosity is raised.
package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a log level.
type Level int

const (
	// LevelDebug is for watch/release and match resolution traces.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for recoverable problems.
	LevelWarn
	// LevelError is for failures the caller should see.
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
func ParseLevel(name string) (Level, error) {
	for level, n := range levelNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return level, nil
		}
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", name)
}

type field struct {
	key   string
	value any
}

// Logger writes leveled lines of the form "LEVEL: msg | k=v k=v".
// Fields keep the order in which they were added.
type Logger struct {
	mu       sync.RWMutex
	minLevel Level
	fields   []field
	output   *log.Logger
}

var defaultLogger = New()

// New creates a Logger writing to stderr at warn level.
func New() *Logger {
	return &Logger{
		minLevel: LevelWarn,
		output:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.minLevel
}

// SetOutput sets the output logger.
func (l *Logger) SetOutput(output *log.Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = output
}

// With returns a child Logger carrying an additional field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(key, value)
}

// WithFields returns a child Logger carrying additional key/value pairs.
// A trailing key without a value is ignored.
func (l *Logger) WithFields(keyVals ...any) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	fields := make([]field, len(l.fields), len(l.fields)+len(keyVals)/2)
	copy(fields, l.fields)
	fields = appendFields(fields, keyVals)

	return &Logger{
		minLevel: l.minLevel,
		fields:   fields,
		output:   l.output,
	}
}

func appendFields(fields []field, keyVals []any) []field {
	for i := 0; i+1 < len(keyVals); i += 2 {
		key, ok := keyVals[i].(string)
		if !ok {
			key = fmt.Sprint(keyVals[i])
		}
		fields = append(fields, field{key: key, value: keyVals[i+1]})
	}
	return fields
}

func (l *Logger) log(level Level, msg string, keyVals ...any) {
	l.mu.RLock()
	minLevel := l.minLevel
	output := l.output
	fields := l.fields
	l.mu.RUnlock()

	if level < minLevel {
		return
	}

	var sb strings.Builder
	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(msg)

	all := appendFields(append([]field(nil), fields...), keyVals)
	if len(all) > 0 {
		sb.WriteString(" |")
		for _, f := range all {
			sb.WriteString(" ")
			sb.WriteString(f.key)
			sb.WriteString("=")
			sb.WriteString(formatValue(f.value))
		}
	}

	output.Print(sb.String())
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" || strings.ContainsAny(val, " \t\n\"") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case error:
		return fmt.Sprintf("%q", val.Error())
	case fmt.Stringer:
		return formatValue(val.String())
	default:
		return fmt.Sprint(v)
	}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keyVals ...any) {
	l.log(LevelDebug, msg, keyVals...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, keyVals ...any) {
	l.log(LevelInfo, msg, keyVals...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keyVals ...any) {
	l.log(LevelWarn, msg, keyVals...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, keyVals ...any) {
	l.log(LevelError, msg, keyVals...)
}

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger
}

// SetLevel sets the minimum log level for the default logger.
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetOutput sets the output for the default logger.
func SetOutput(output *log.Logger) {
	defaultLogger.SetOutput(output)
}

// With returns a child of the default logger with an additional field.
func With(key string, value any) *Logger {
	return defaultLogger.With(key, value)
}

// Debug logs at debug level using the default logger.
func Debug(msg string, keyVals ...any) {
	defaultLogger.Debug(msg, keyVals...)
}

// Warn logs at warn level using the default logger.
func Warn(msg string, keyVals ...any) {
	defaultLogger.Warn(msg, keyVals...)
}
