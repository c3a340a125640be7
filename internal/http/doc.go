// Package http provides the HTTP client used to verify generated URLs.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Per-request timeouts
//   - HEAD requests that follow redirects
//
// # Basic Usage
//
//	client := http.NewClient(5*time.Second, "")
//
//	status, err := client.Head(ctx, "http://example.com/01.mp3")
//
//	// Or just the verdict; any failure is "unreachable"
//	ok := client.Probe(ctx, "http://example.com/01.mp3")
//
// A URL is reachable when the final status code, after redirects, is in
// the range [200, 400).
package http
