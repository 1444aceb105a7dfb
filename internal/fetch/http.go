package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// DefaultTimeout bounds a request when the context carries no earlier deadline.
const DefaultTimeout = 30 * time.Second

// StatusError reports a non-200 response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// HTTPFetcher fetches log documents from a dashboard server.
type HTTPFetcher struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
}

// Options configures an HTTPFetcher.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// Client overrides the underlying client, mainly for tests.
	Client *fasthttp.Client
}

// NewHTTPFetcher creates a fetcher that resolves endpoints against BaseURL.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	client := opts.Client
	if client == nil {
		client = &fasthttp.Client{Name: "svnlog-go"}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		client:  client,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: timeout,
	}
}

// URL returns the absolute URL for endpoint.
func (f *HTTPFetcher) URL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return f.baseURL + endpoint
}

// Get performs a GET for endpoint and returns a copy of the response body.
func (f *HTTPFetcher) Get(ctx context.Context, endpoint string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url := f.URL(endpoint)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/xml, text/xml")

	deadline := time.Now().Add(f.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := f.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode()}
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
