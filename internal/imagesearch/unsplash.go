package imagesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const unsplashPerPage = 10

type unsplashSource struct {
	client  *http.Client
	baseURL string
	key     string
}

type unsplashResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// NewUnsplash creates a source for the Unsplash photo search API.
func NewUnsplash(client *http.Client, baseURL, accessKey string) Source {
	if baseURL == "" {
		baseURL = "https://api.unsplash.com"
	}
	return &unsplashSource{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     accessKey,
	}
}

func (u *unsplashSource) Name() string { return "unsplash" }

func (u *unsplashSource) Search(ctx context.Context, query string, vertical bool) ([]string, error) {
	query = strings.TrimSpace(strings.NewReplacer("slide", "", "presentation", "").Replace(query))

	orientation := "landscape"
	if vertical {
		orientation = "portrait"
	}
	params := url.Values{
		"query":       {query},
		"per_page":    {fmt.Sprint(unsplashPerPage)},
		"orientation": {orientation},
		"order_by":    {"relevant"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+u.key)
	req.Header.Set("User-Agent", userAgent)

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash API error: %d", resp.StatusCode)
	}

	var body unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode unsplash response: %w", err)
	}

	urls := make([]string, 0, len(body.Results))
	for _, r := range body.Results {
		if r.URLs.Regular != "" {
			urls = append(urls, r.URLs.Regular)
		}
	}
	return urls, nil
}
