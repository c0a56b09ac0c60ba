package prodex

import "context"

// Fetcher retrieves rendered product page HTML.
// Implementations may use browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the rendered HTML for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for page fetching.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
