package imagesearch

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

const googleResults = 8

type googleSource struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogle creates a Custom Search image source. Extra client options are
// appended after the API key.
func NewGoogle(ctx context.Context, apiKey, cx string, opts ...option.ClientOption) (Source, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create custom search service: %w", err)
	}
	return &googleSource{svc: svc, cx: cx}, nil
}

func (g *googleSource) Name() string { return "google" }

// Search returns image links. Orientation is checked after download since
// the API has no portrait filter.
func (g *googleSource) Search(ctx context.Context, query string, vertical bool) ([]string, error) {
	resp, err := g.svc.Cse.List().
		Cx(g.cx).
		Q(query).
		SearchType("image").
		Num(googleResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("google search: %w", err)
	}

	urls := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link != "" {
			urls = append(urls, item.Link)
		}
	}
	return urls, nil
}
