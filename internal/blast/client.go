// internal/blast/client.go
package blast

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the NCBI BLAST URL API endpoint.
const DefaultBaseURL = "https://blast.ncbi.nlm.nih.gov/Blast.cgi"

// ErrNoRID means a submission response carried no request identifier.
var ErrNoRID = errors.New("submission response contains no RID")

// Client speaks the BLAST URL API: form-encoded requests, plain-text
// responses. One Client may be shared across attempts; per-call deadlines
// come from the caller's context.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Program string // e.g. "blastn"
}

// NewClient returns a Client for the given endpoint; empty means the NCBI
// default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTP:    &http.Client{},
		BaseURL: baseURL,
		Program: "blastn",
	}
}

// Submit sends the query sequence for alignment against db and returns the
// request identifier plus the service's suggested initial wait (zero when
// absent).
func (c *Client) Submit(ctx context.Context, tr Transport, db, query string) (string, time.Duration, error) {
	form := url.Values{}
	form.Set("CMD", "Put")
	form.Set("PROGRAM", c.Program)
	form.Set("DATABASE", db)
	form.Set("QUERY", query)

	body, err := c.post(ctx, tr, form)
	if err != nil {
		return "", 0, err
	}

	rid := scanField(body, "RID")
	if rid == "" {
		return "", 0, ErrNoRID
	}
	var rtoe time.Duration
	if s := scanField(body, "RTOE"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil {
			rtoe = time.Duration(secs) * time.Second
		}
	}
	return rid, rtoe, nil
}

// Ready polls the search-info endpoint and reports whether the job is done.
func (c *Client) Ready(ctx context.Context, tr Transport, rid string) (bool, error) {
	q := url.Values{}
	q.Set("CMD", "Get")
	q.Set("FORMAT_OBJECT", "SearchInfo")
	q.Set("RID", rid)

	body, err := c.get(ctx, tr, q)
	if err != nil {
		return false, err
	}
	return strings.Contains(body, "Status=READY"), nil
}

// Report downloads the flat-text pairwise alignment report for rid.
func (c *Client) Report(ctx context.Context, tr Transport, rid string) (string, error) {
	q := url.Values{}
	q.Set("CMD", "Get")
	q.Set("FORMAT_TYPE", "Text")
	q.Set("RID", rid)

	return c.get(ctx, tr, q)
}

func (c *Client) post(ctx context.Context, tr Transport, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tr.Wrap(c.BaseURL), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) get(ctx context.Context, tr Transport, q url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tr.Wrap(c.BaseURL+"?"+q.Encode()), nil)
	if err != nil {
		return "", err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("blast: unexpected HTTP status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// scanField extracts <name> from a "NAME = value" line in a plain-text
// QBlast response.
func scanField(body, name string) string {
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if v, ok := strings.CutPrefix(line, name+" = "); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
