package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var levels = map[string]int{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

type implLogger struct {
	logger *log.Logger
	level  int
	runID  string
}

// New creates a Logger writing to stdout
func New(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a Logger writing to w. Unknown levels fall back to info.
func NewWithWriter(level string, w io.Writer) Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = levelInfo
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  lvl,
	}
}

// WithRunID tags every line with the batch run identifier.
func WithRunID(l Logger, runID string) Logger {
	impl, ok := l.(*implLogger)
	if !ok {
		return l
	}
	cp := *impl
	cp.runID = runID
	return &cp
}

func (l *implLogger) shouldLog(level string) bool {
	target, ok := levels[level]
	if !ok {
		return true
	}
	return target >= l.level
}

func (l *implLogger) printf(tag, msg string, args ...interface{}) {
	prefix := "[" + tag + "] "
	if l.runID != "" {
		prefix += "(" + l.runID + ") "
	}
	l.logger.Printf(prefix+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.printf("DEBUG", msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.printf("INFO", msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.printf("WARN", msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.printf("ERROR", msg, args...)
	}
}

// Nop returns a Logger that discards everything. Used by tests.
func Nop() Logger {
	return NewWithWriter("error", io.Discard)
}
