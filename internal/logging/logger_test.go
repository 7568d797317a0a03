package logging

import (
	"bytes"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New()
	logger.SetLevel(level)
	logger.SetOutput(log.New(&buf, "", 0))
	return logger, &buf
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug allowed at debug", LevelDebug, LevelDebug, true},
		{"error allowed at debug", LevelDebug, LevelError, true},
		{"debug blocked at info", LevelInfo, LevelDebug, false},
		{"info allowed at info", LevelInfo, LevelInfo, true},
		{"debug blocked at warn", LevelWarn, LevelDebug, false},
		{"info blocked at warn", LevelWarn, LevelInfo, false},
		{"warn allowed at warn", LevelWarn, LevelWarn, true},
		{"warn blocked at error", LevelError, LevelWarn, false},
		{"error allowed at error", LevelError, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(tt.minLevel)

			switch tt.logLevel {
			case LevelDebug:
				logger.Debug("test message")
			case LevelInfo:
				logger.Info("test message")
			case LevelWarn:
				logger.Warn("test message")
			case LevelError:
				logger.Error("test message")
			}

			if tt.shouldLog {
				assert.Contains(t, buf.String(), tt.logLevel.String()+": test message")
			} else {
				assert.Empty(t, buf.String(), "expected no log output")
			}
			assert.Equal(t, tt.shouldLog, logger.Enabled(tt.logLevel))
		})
	}
}

func TestLoggerFieldsKeepOrder(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	child := logger.With("signal", "hot").WithFields("timeout", 100*time.Millisecond, "matcher", "EmitValue")
	child.Debug("signal timed out", "subscribers", 2)

	assert.Equal(t,
		"DEBUG: signal timed out | signal=hot timeout=100ms matcher=EmitValue subscribers=2\n",
		buf.String())
}

func TestLoggerWithFieldsIgnoresDanglingKey(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.WithFields("a", 1, "dangling").Info("done")

	assert.Equal(t, "INFO: done | a=1\n", buf.String())
}

func TestLoggerOriginalUnmodified(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	_ = logger.With("signal", "hot")
	logger.Info("original logger")

	assert.NotContains(t, buf.String(), "signal=hot")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"simple string", "hello", "hello"},
		{"empty string", "", `""`},
		{"string with spaces", "hello world", `"hello world"`},
		{"string with quote", `say "a"`, `"say \"a\""`},
		{"integer", 42, "42"},
		{"error", errors.New("oops"), `"oops"`},
		{"stringer", 250 * time.Millisecond, "250ms"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.input))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" Warn ", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown log level")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(log.New(&buf, "", 0))
	SetLevel(LevelWarn)
	t.Cleanup(func() {
		SetOutput(log.New(&bytes.Buffer{}, "", 0))
	})

	Debug("debug message")
	assert.Empty(t, buf.String())

	Warn("warn message")
	assert.Contains(t, buf.String(), "WARN: warn message")

	buf.Reset()
	With("component", "test").Warn("child message")
	assert.Contains(t, buf.String(), "component=test")
	assert.Same(t, defaultLogger, Default())
}
