// internal/blast/enrich.go
package blast

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultImageBaseURL is the Wikipedia REST page-summary endpoint.
const DefaultImageBaseURL = "https://en.wikipedia.org/api/rest_v1/page/summary"

// DefaultImageTimeout bounds each thumbnail lookup.
const DefaultImageTimeout = 2 * time.Second

// ImageClient looks up a representative thumbnail for an organism name.
// Lookups are strictly best-effort: every failure mode yields an empty URL.
type ImageClient struct {
	HTTP    *http.Client
	BaseURL string
	Timeout time.Duration
}

// NewImageClient returns an ImageClient for the given endpoint; empty means
// the Wikipedia default.
func NewImageClient(baseURL string) *ImageClient {
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	return &ImageClient{
		HTTP:    &http.Client{},
		BaseURL: baseURL,
		Timeout: DefaultImageTimeout,
	}
}

// Lookup fetches a thumbnail URL for name, or "" on any failure or timeout.
func (ic *ImageClient) Lookup(ctx context.Context, name string) string {
	if name == "" {
		return ""
	}
	timeout := ic.Timeout
	if timeout == 0 {
		timeout = DefaultImageTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	title := url.PathEscape(strings.ReplaceAll(name, " ", "_"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ic.BaseURL+"/"+title, nil)
	if err != nil {
		return ""
	}
	resp, err := ic.HTTP.Do(req)
	if err != nil {
		return ""
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var summary struct {
		Thumbnail struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return ""
	}
	return summary.Thumbnail.Source
}

// enrich attaches thumbnails to hits. Lookups for different hits run
// concurrently; presentation waits for the whole batch, so this returns
// only once every lookup finished or timed out.
func (o *Orchestrator) enrich(ctx context.Context, hits []Hit) {
	if o.opts.Images == nil || len(hits) == 0 {
		return
	}
	g, gctx := errgroup.WithContext(ctx)
	for i := range hits {
		i := i
		g.Go(func() error {
			hits[i].ImageURL = o.opts.Images.Lookup(gctx, hits[i].Name)
			return nil
		})
	}
	_ = g.Wait() // lookups never return errors
}
