package publish

import "context"

// Publisher copies run artifacts to shared storage.
type Publisher interface {
	// Publish uploads every path under runID and returns their public URIs.
	Publish(ctx context.Context, runID string, paths ...string) ([]string, error)
	Close() error
}
