package logger

import "context"

// Logger is the leveled printf-style logger shared by every package.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})

	// Named returns a logger that tags every line with the given component.
	Named(name string) Logger
}
