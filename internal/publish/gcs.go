package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
)

// Publish uploads every path it can. A failed upload does not stop the rest;
// the failures are joined into the returned error.
func (p *gcsPublisher) Publish(ctx context.Context, runID string, paths ...string) ([]string, error) {
	uris := make([]string, 0, len(paths))
	var errs []error
	for _, local := range paths {
		if local == "" {
			continue
		}
		name := path.Join(p.prefix, runID, filepath.Base(local))
		if err := p.upload(ctx, local, name); err != nil {
			p.logger.Error(ctx, "Failed to publish %s: %v", local, err)
			errs = append(errs, fmt.Errorf("publish %s: %w", filepath.Base(local), err))
			continue
		}

		uri := fmt.Sprintf("gs://%s/%s", p.bucket, name)
		p.logger.Info(ctx, "Published %s", uri)
		uris = append(uris, uri)
	}
	return uris, errors.Join(errs...)
}

func (p *gcsPublisher) upload(ctx context.Context, local, name string) error {
	f, err := os.Open(local)
	if err != nil {
		return err
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(local))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w := p.open(ctx, name, contentType)
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return fmt.Errorf("writing object data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing object writer: %w", err)
	}
	return nil
}

func (p *gcsPublisher) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}
