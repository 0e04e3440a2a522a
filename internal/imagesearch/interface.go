package imagesearch

import "context"

// Fetcher finds an illustration for a slide and stores it locally.
type Fetcher interface {
	// Fetch always returns a readable file path; when every source fails it
	// is the generated placeholder.
	Fetch(ctx context.Context, topic, prompt, label string) string
}

// Source is one image search backend returning candidate image URLs.
type Source interface {
	Name() string
	Search(ctx context.Context, query string, vertical bool) ([]string, error)
}
