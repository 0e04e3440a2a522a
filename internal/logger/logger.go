package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	level  string
	prefix string
}

// New creates a Logger writing to stdout.
func New(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a Logger writing to w. The CLI uses it to keep log
// lines on stderr while a progress bar owns the terminal.
func NewWithWriter(level string, w io.Writer) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  strings.ToLower(level),
	}
}

func (l *implLogger) Named(name string) Logger {
	prefix := l.prefix + "[" + name + "] "
	return &implLogger{
		logger: l.logger,
		level:  l.level,
		prefix: prefix,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = levels["info"]
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) print(level, tag, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}
	l.logger.Printf(tag+l.prefix+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.print("debug", "[DEBUG] ", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.print("info", "[INFO] ", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.print("warn", "[WARN] ", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.print("error", "[ERROR] ", msg, args)
}

// Nop returns a Logger that discards everything. Tests use it.
func Nop() Logger {
	return NewWithWriter("error", io.Discard)
}
