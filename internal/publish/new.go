package publish

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"google.golang.org/api/option"
)

// objectWriter opens a writer for one object in the bucket.
type objectWriter func(ctx context.Context, name, contentType string) io.WriteCloser

type gcsPublisher struct {
	bucket string
	prefix string
	open   objectWriter
	close  func() error
	logger logger.Logger
}

// New returns a Cloud Storage publisher, or a no-op one when no bucket is
// configured.
func New(ctx context.Context, cfg config.PublishConfig, log logger.Logger, opts ...option.ClientOption) (Publisher, error) {
	if cfg.Bucket == "" {
		return Nop(), nil
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	bucket := client.Bucket(cfg.Bucket)
	return &gcsPublisher{
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		open: func(ctx context.Context, name, contentType string) io.WriteCloser {
			w := bucket.Object(name).NewWriter(ctx)
			w.ContentType = contentType
			return w
		},
		close:  client.Close,
		logger: log,
	}, nil
}

type nopPublisher struct{}

// Nop returns a Publisher that uploads nothing.
func Nop() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, string, ...string) ([]string, error) { return nil, nil }
func (nopPublisher) Close() error                                                 { return nil }
