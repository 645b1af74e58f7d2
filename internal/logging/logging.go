// Package logging wraps charmbracelet/log for the server and CLI.
//
// stdout carries the MCP conversation, so every logger writes to stderr or,
// with DEBUG set, to a file under the XDG state directory.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

const (
	// Prefix is printed in front of every log line.
	Prefix = "dsmcp"
	// debugLogFile is relative to the XDG state home.
	debugLogFile = "dsmcp/dsmcp.log"
)

type AppLogger struct {
	logger *log.Logger
	debug  bool
}

// Options tunes NewAppLoggerWithOptions. The zero value gives the production
// logger.
type Options struct {
	// Level overrides the default level ("debug", "info", "warn", "error").
	Level string
	// Output replaces stderr. Ignored when DEBUG is set.
	Output io.Writer
}

var (
	defaultLogger *AppLogger
	mu            sync.Mutex
)

// GetDefault returns the process-wide logger, creating it on first use.
func GetDefault() *AppLogger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewAppLogger()
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

func NewAppLogger() *AppLogger {
	return NewAppLoggerWithOptions(Options{})
}

func NewAppLoggerWithOptions(opts Options) *AppLogger {
	if os.Getenv("DEBUG") != "" {
		l, err := newDebugLogger()
		if err == nil {
			return l
		}
		fmt.Fprintf(os.Stderr, "dsmcp: debug log unavailable, using stderr: %v\n", err)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	// Production: warnings and errors to stderr unless configured otherwise
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          Prefix,
	})
	level := log.WarnLevel
	if opts.Level != "" {
		if parsed, err := log.ParseLevel(opts.Level); err == nil {
			level = parsed
		} else {
			logger.Warn("Unknown log level, keeping default", "level", opts.Level, "default", level)
		}
	}
	logger.SetLevel(level)

	return &AppLogger{
		logger: logger,
		debug:  level <= log.DebugLevel,
	}
}

// newDebugLogger logs everything to a file that is truncated on each run.
func newDebugLogger() (*AppLogger, error) {
	logPath, err := xdg.StateFile(debugLogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve debug log path: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create debug log file: %w", err)
	}

	logger := log.NewWithOptions(logFile, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          Prefix,
	})
	logger.SetLevel(log.DebugLevel)
	logger.Info("Debug logging enabled", "log_file", logPath)

	return &AppLogger{logger: logger, debug: true}, nil
}

func (al *AppLogger) Info(msg string, keyvals ...interface{}) {
	al.logger.Info(msg, keyvals...)
}

func (al *AppLogger) Warn(msg string, keyvals ...interface{}) {
	al.logger.Warn(msg, keyvals...)
}

func (al *AppLogger) Error(msg string, keyvals ...interface{}) {
	al.logger.Error(msg, keyvals...)
}

func (al *AppLogger) Debug(msg string, keyvals ...interface{}) {
	if al.debug {
		al.logger.Debug(msg, keyvals...)
	}
}

// DebugEnabled reports whether Debug output is written anywhere.
func (al *AppLogger) DebugEnabled() bool {
	return al.debug
}

// With returns a logger that adds keyvals to every line.
func (al *AppLogger) With(keyvals ...interface{}) *AppLogger {
	return &AppLogger{
		logger: al.logger.With(keyvals...),
		debug:  al.debug,
	}
}

// DebugObject dumps obj with %+v.
func (al *AppLogger) DebugObject(name string, obj interface{}) {
	if al.debug {
		al.logger.Debug("Object dump", "name", name, "object", fmt.Sprintf("%+v", obj))
	}
}

func (al *AppLogger) LogPerformance(operation string, start time.Time) {
	if al.debug {
		al.logger.Debug("Performance",
			"operation", operation,
			"duration", time.Since(start),
		)
	}
}

// LogToolCall records the outcome of one tool call. Failed calls are logged
// at warn level so they show up in production; successful ones go through
// LogPerformance.
func (al *AppLogger) LogToolCall(tool string, start time.Time, failed bool) {
	if failed {
		al.logger.Warn("Tool call failed", "tool", tool, "duration", time.Since(start))
		return
	}
	al.LogPerformance(tool, start)
}

// NewTestLogger creates a debug logger that writes to a buffer.
func NewTestLogger() (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "Test",
	})
	logger.SetLevel(log.DebugLevel)

	return &AppLogger{
		logger: logger,
		debug:  true,
	}, &buf
}
