package executor

import "context"

// Executor runs external tools such as soffice, pdftoppm, ffmpeg and ffprobe.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
	// LookPath reports whether a binary is available on PATH.
	LookPath(name string) (string, error)
}
