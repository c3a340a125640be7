package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/handiism/playlist-generator/internal/config"
)

// Client probes URLs for reachability.
//
// Client provides:
//   - Configured User-Agent header
//   - Per-request timeout
//   - HEAD-based liveness checks that follow redirects
//
// Example usage:
//
//	client := NewClient(5*time.Second, "PlaylistGenerator")
//	if client.Probe(ctx, "http://example.com/01.mp3") {
//	    fmt.Println("reachable")
//	}
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new probing client.
//
// A zero timeout falls back to config.DefaultTimeout and an empty
// userAgent to config.DefaultUserAgent.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// NewClientFromOptions builds a Client from run options.
func NewClientFromOptions(opts *config.Options) *Client {
	return NewClient(opts.Timeout, opts.UserAgent)
}

// Head performs a HEAD request and returns the final status code after
// redirects.
//
// Returns an error if:
//   - The URL cannot be parsed into a request
//   - The request fails (DNS, connection, timeout, too many redirects)
func (c *Client) Head(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// Probe reports whether url is reachable: a HEAD request completes and
// its final status is in [200, 400).
//
// All failures are treated alike and reported as false. There is no retry.
func (c *Client) Probe(ctx context.Context, url string) bool {
	status, err := c.Head(ctx, url)
	if err != nil {
		return false
	}
	return IsReachableStatus(status)
}

// IsReachableStatus reports whether status counts as a live URL.
func IsReachableStatus(status int) bool {
	return status >= http.StatusOK && status < http.StatusBadRequest
}
